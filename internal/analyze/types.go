package analyze

import (
	"go/types"
	"reflect"
	"sort"

	"protofield-generator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "protofield-generator/examples/addressbook"
	Name    string // e.g., "AddressBook"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindInterface          // interface type (oneof groups)
	TypeKindAlias              // named type wrapping a basic type
	TypeKindExternal           // named type from a package that was not loaded
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindInterface:
		return "interface"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For named non-struct types, the underlying type
	ElemType   *TypeInfo   // For pointers and slices, the element type
	Fields     []FieldInfo // For structs, the list of fields
	GoType     types.Type  // The original go/types.Type
	File       string      // Base name of the declaring file, named types only
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackagePaths returns the loaded package paths in sorted order.
func (g *TypeGraph) PackagePaths() []string {
	paths := make([]string, 0, len(g.Packages))
	for p := range g.Packages {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}

// Implementers returns the struct types of the interface's own package whose
// pointer type implements the interface, in declaration-name order.
func (g *TypeGraph) Implementers(iface *TypeInfo) []*TypeInfo {
	if iface == nil || iface.Kind != TypeKindInterface || iface.GoType == nil {
		return nil
	}

	it, ok := iface.GoType.Underlying().(*types.Interface)
	if !ok {
		return nil
	}

	pkg := g.Packages[iface.ID.PkgPath]
	if pkg == nil {
		return nil
	}

	var res []*TypeInfo

	for _, id := range pkg.Types {
		t := g.Types[id]
		if t == nil || t.Kind != TypeKindStruct || t.GoType == nil {
			continue
		}

		if types.Implements(types.NewPointer(t.GoType), it) {
			res = append(res, t)
		}
	}

	return res
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Types []TypeID // Named types defined in this package, sorted by name
}
