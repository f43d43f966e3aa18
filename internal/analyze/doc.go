// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build an in-memory model of the structs whose fields may carry
// wire annotations.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/interface/external)
//     and the source file a named type is declared in
//   - FieldInfo: describes field name, type, tags, and embedding
//   - PackageInfo: import path, name and directory of a loaded package
package analyze
