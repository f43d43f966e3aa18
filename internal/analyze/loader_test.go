package analyze

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addressbookPkg = "protofield-generator/examples/addressbook"

func loadAddressbook(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(addressbookPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadAddressbook(t)

	require.Contains(t, graph.Packages, addressbookPkg)

	pkg := graph.Packages[addressbookPkg]
	assert.Equal(t, "addressbook", pkg.Name)
	assert.Equal(t, "addressbook", filepath.Base(pkg.Dir))
	assert.Equal(t, []string{addressbookPkg}, graph.PackagePaths())

	for _, name := range []string{"AddressBook", "ContactMethod", "Handle", "Person", "PreferredEmail", "PreferredPhone"} {
		assert.Contains(t, pkg.Types, TypeID{PkgPath: addressbookPkg, Name: name})
	}
}

func TestAnalyzer_AddressBookFields(t *testing.T) {
	graph := loadAddressbook(t)

	book := graph.GetType(TypeID{PkgPath: addressbookPkg, Name: "AddressBook"})
	require.NotNil(t, book)
	assert.Equal(t, TypeKindStruct, book.Kind)
	assert.Equal(t, "addressbook.go", book.File)

	fields := make(map[string]FieldInfo)
	for _, f := range book.Fields {
		fields[f.Name] = f
	}

	people := fields["People"]
	assert.Equal(t, TypeKindSlice, people.Type.Kind)
	assert.Equal(t, TypeKindPointer, people.Type.ElemType.Kind)
	assert.Equal(t, "Person", people.Type.ElemType.ElemType.ID.Name)
	assert.Equal(t, "message,repeated", people.Tag.Get("proto"))

	assert.Equal(t, TypeKindPointer, fields["Owner"].Type.Kind)
	assert.Equal(t, TypeKindStruct, fields["Primary"].Type.Kind)
	assert.Equal(t, TypeKindInterface, fields["Preferred"].Type.Kind)
	assert.Equal(t, TypeKindBasic, fields["Notes"].Type.Kind)
	assert.Empty(t, fields["Notes"].Tag)

	// Recursive types resolve to the same TypeInfo.
	assert.Same(t, book, fields["Previous"].Type.ElemType)
}

func TestAnalyzer_SourceFiles(t *testing.T) {
	graph := loadAddressbook(t)

	person := graph.GetType(TypeID{PkgPath: addressbookPkg, Name: "Person"})
	require.NotNil(t, person)
	assert.Equal(t, "contacts.go", person.File)
}

func TestTypeGraph_Implementers(t *testing.T) {
	graph := loadAddressbook(t)

	iface := graph.GetType(TypeID{PkgPath: addressbookPkg, Name: "ContactMethod"})
	require.NotNil(t, iface)

	var names []string
	for _, impl := range graph.Implementers(iface) {
		names = append(names, impl.ID.Name)
	}

	assert.Equal(t, []string{"PreferredEmail", "PreferredPhone"}, names)

	book := graph.GetType(TypeID{PkgPath: addressbookPkg, Name: "AddressBook"})
	assert.Empty(t, graph.Implementers(book), "non-interface types have no implementers")
}

func TestAnalyzer_GetStruct(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(addressbookPkg)
	require.NoError(t, err)

	book, err := analyzer.GetStruct(addressbookPkg, "AddressBook")
	require.NoError(t, err)
	assert.Equal(t, "AddressBook", book.ID.Name)

	_, err = analyzer.GetStruct(addressbookPkg, "ContactMethod")
	require.Error(t, err)

	_, err = analyzer.GetStruct(addressbookPkg, "Missing")
	require.Error(t, err)
}

func TestAnalyzer_LoadPackages_Errors(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("protofield-generator/does/not/exist")
	require.Error(t, err)
}

func TestTypeString(t *testing.T) {
	person := &TypeInfo{ID: TypeID{PkgPath: addressbookPkg, Name: "Person"}, Kind: TypeKindStruct}

	tests := []struct {
		t    *TypeInfo
		want string
	}{
		{nil, "<nil>"},
		{person, "Person"},
		{&TypeInfo{Kind: TypeKindPointer, ElemType: person}, "*Person"},
		{&TypeInfo{Kind: TypeKindSlice, ElemType: &TypeInfo{Kind: TypeKindPointer, ElemType: person}}, "[]*Person"},
		{&TypeInfo{Kind: TypeKindStruct}, "struct{...}"},
		{&TypeInfo{Kind: TypeKindUnknown}, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeString(tt.t))
	}
}

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "string", TypeID{Name: "string"}.String())
	assert.Equal(t, addressbookPkg+".Person", TypeID{PkgPath: addressbookPkg, Name: "Person"}.String())
}
