package linker

import (
	"fmt"

	"github.com/wireproto/wireproto/ast"
)

type linkCtx struct {
	tree    *declarationTree
	visible map[string]map[string]bool
}

func (lk *linkCtx) convertFile(f *ast.File) (*File, error) {
	pkgScope, err := lk.tree.packageScope(f.Package, f.Start())
	if err != nil {
		return nil, err
	}
	goPackage, _ := f.GoPackageOption()
	out := &File{Name: f.Name, Package: f.Package, Syntax: f.Syntax, GoPackage: goPackage}
	for _, am := range f.Messages {
		node := pkgScope.children[am.Name]
		m, err := lk.convertMessage(node, am, f)
		if err != nil {
			return nil, err
		}
		out.Messages = append(out.Messages, m)
	}
	for _, ae := range f.Enums {
		node := pkgScope.children[ae.Name]
		e, err := lk.convertEnum(node.fqn, ae, f.Syntax)
		if err != nil {
			return nil, err
		}
		out.Enums = append(out.Enums, e)
	}
	for _, as := range f.Services {
		node := pkgScope.children[as.Name]
		s, err := lk.convertService(node.fqn, as, pkgScope, f)
		if err != nil {
			return nil, err
		}
		out.Services = append(out.Services, s)
	}
	return out, nil
}

func (lk *linkCtx) convertMessage(node *scopeNode, am *ast.Message, f *ast.File) (*Message, error) {
	m := &Message{
		FQN: node.fqn, Name: am.Name, Syntax: f.Syntax,
		MapEntry: am.MapEntryOption(), ReservedRanges: am.Reserved, ReservedNames: am.ReservedNames,
	}

	if err := checkNameCollisions(am); err != nil {
		return nil, err
	}

	seenTags := map[int32]ast.SourcePos{}
	for _, af := range am.Fields {
		fld, err := lk.convertField(node, af, f)
		if err != nil {
			return nil, err
		}
		if !validTagRange(fld.Tag) {
			return nil, newErr(TagOutOfRange, af.Start(), "tag %d for field %q", fld.Tag, fld.Name)
		}
		if isReservedTag(fld.Tag) {
			return nil, newErr(TagReserved, af.Start(), "tag %d for field %q falls in reserved range %d-%d", fld.Tag, fld.Name, reservedTagLo, reservedTagHi)
		}
		if prev, ok := seenTags[fld.Tag]; ok {
			return nil, newErr(DuplicateTag, af.Start(), "tag %d reused (first used at %s)", fld.Tag, prev)
		}
		seenTags[fld.Tag] = af.Start()
		if fld.Label == ast.LabelRequired && f.Syntax == ast.SyntaxProto3 {
			return nil, newErr(RequiredInProto3, af.Start(), "field %q", fld.Name)
		}
		m.Fields = append(m.Fields, fld)
	}

	for _, ao := range am.Oneofs {
		oneof := &Oneof{Name: ao.Name}
		for _, af := range ao.Fields {
			for _, fld := range m.Fields {
				if fld.Name == af.Name && fld.OneofName == ao.Name {
					oneof.Fields = append(oneof.Fields, fld)
				}
			}
		}
		m.Oneofs = append(m.Oneofs, oneof)
	}

	for _, ae := range am.Enums {
		child := node.children[ae.Name]
		e, err := lk.convertEnum(child.fqn, ae, f.Syntax)
		if err != nil {
			return nil, err
		}
		m.Enums = append(m.Enums, e)
	}

	for _, an := range am.Nested {
		child := node.children[an.Name]
		nm, err := lk.convertMessage(child, an, f)
		if err != nil {
			return nil, err
		}
		m.Nested = append(m.Nested, nm)
	}

	return m, nil
}

// checkNameCollisions enforces invariant 2: no field name may collide with
// another field, a nested type name, or a reserved name in the same
// message.
func checkNameCollisions(am *ast.Message) error {
	seen := map[string]bool{}
	for _, af := range am.Fields {
		if seen[af.Name] {
			return newErr(DuplicateName, af.Start(), "field %q declared twice", af.Name)
		}
		seen[af.Name] = true
	}
	for _, n := range am.Nested {
		if seen[n.Name] {
			return newErr(DuplicateName, n.Start(), "name %q collides with a field", n.Name)
		}
		seen[n.Name] = true
	}
	for _, e := range am.Enums {
		if seen[e.Name] {
			return newErr(DuplicateName, e.Start(), "name %q collides with a field", e.Name)
		}
		seen[e.Name] = true
	}
	for _, rn := range am.ReservedNames {
		if seen[rn] {
			return newErr(DuplicateName, am.Start(), "reserved name %q collides with a declared field", rn)
		}
	}
	return nil
}

func (lk *linkCtx) convertField(scope *scopeNode, af *ast.Field, f *ast.File) (*Field, error) {
	fld := &Field{
		Name: af.Name, Tag: af.Tag, Label: af.Label,
		OneofName: af.OneofName, Deprecated: af.Deprecated(),
	}
	if d, ok := af.Default(); ok {
		fld.Default = d
	}

	switch af.Type.Kind {
	case ast.FieldTypeScalar:
		fld.Type = FieldType{Kind: FieldScalar, Scalar: af.Type.Scalar}
	case ast.FieldTypeGroup:
		return nil, newErr(GroupUnsupported, af.Start(), "field %q", af.Name)
	case ast.FieldTypeNamed:
		node, ok := resolveTypeName(lk.tree.root, scope, af.Type.TypeName, lk.visible[f.Name])
		if !ok {
			return nil, newErr(UnresolvedType, af.Start(), "%q", af.Type.TypeName)
		}
		switch node.kind {
		case symEnum:
			fld.Type = FieldType{Kind: FieldEnum, FQN: node.fqn}
		case symMessage:
			if node.astMessage != nil && node.astMessage.MapEntryOption() && af.MapType != nil {
				vt, err := lk.resolveFieldType(scope, af.MapType.ValueType, f)
				if err != nil {
					return nil, err
				}
				if !mapKeyAllowed(af.MapType.KeyScalar) {
					return nil, newErr(BadMapKey, af.Start(), "%s", af.MapType.KeyScalar)
				}
				fld.Type = FieldType{Kind: FieldMap, Scalar: af.MapType.KeyScalar, MapValue: &vt}
			} else {
				fld.Type = FieldType{Kind: FieldMessage, FQN: node.fqn}
			}
		default:
			return nil, newErr(UnresolvedType, af.Start(), "%q does not name a message or enum", af.Type.TypeName)
		}
	}

	packable := fld.Type.Kind == FieldEnum || (fld.Type.Kind == FieldScalar && isPackableScalar(fld.Type.Scalar))
	if fld.Label == ast.LabelRepeated && packable {
		packed, explicit := af.IsPacked()
		if explicit {
			fld.Packed = packed
		} else {
			fld.Packed = f.Syntax == ast.SyntaxProto3
		}
	}
	return fld, nil
}

// isPackableScalar reports whether kind's wire type is VARINT/I32/I64 —
// string and bytes fields always encode one LEN record per element and
// are never eligible for packing (spec §4.4 applies packing only to
// scalar wire types that pack into a single LEN record of concatenated
// values, which does not describe LEN-typed scalars themselves).
func isPackableScalar(kind ast.ScalarKind) bool {
	switch kind {
	case ast.ScalarString, ast.ScalarBytes:
		return false
	default:
		return true
	}
}

// resolveFieldType resolves a raw (unlinked) ast.FieldType in the context
// of scope — used for a map field's value type, which the parser leaves
// unresolved on ast.MapType rather than on the synthesized entry message's
// ast.Field (that field was built directly by canonicalize without running
// back through the parser's name resolution, since parsing has none).
func (lk *linkCtx) resolveFieldType(scope *scopeNode, t ast.FieldType, f *ast.File) (FieldType, error) {
	switch t.Kind {
	case ast.FieldTypeScalar:
		return FieldType{Kind: FieldScalar, Scalar: t.Scalar}, nil
	case ast.FieldTypeGroup:
		return FieldType{}, fmt.Errorf("group types are not allowed as map values")
	default:
		node, ok := resolveTypeName(lk.tree.root, scope, t.TypeName, lk.visible[f.Name])
		if !ok {
			return FieldType{}, newErr(UnresolvedType, scope.declPos, "%q", t.TypeName)
		}
		if node.kind == symEnum {
			return FieldType{Kind: FieldEnum, FQN: node.fqn}, nil
		}
		return FieldType{Kind: FieldMessage, FQN: node.fqn}, nil
	}
}

func (lk *linkCtx) convertEnum(fqn string, ae *ast.Enum, syntax ast.Syntax) (*Enum, error) {
	e := &Enum{FQN: fqn, Name: ae.Name, AllowAlias: ae.AllowAlias()}
	seen := map[int32]bool{}
	for i, av := range ae.Values {
		if !e.AllowAlias && seen[av.Number] {
			return nil, newErr(DuplicateName, av.Start(), "enum value number %d reused in %q", av.Number, ae.Name)
		}
		seen[av.Number] = true
		if i == 0 && syntax == ast.SyntaxProto3 && av.Number != 0 {
			return nil, newErr(Proto3EnumFirstValueNotZero, av.Start(), "enum %q", ae.Name)
		}
		e.Values = append(e.Values, EnumValue{Name: av.Name, Number: av.Number})
	}
	return e, nil
}

func (lk *linkCtx) convertService(fqn string, as *ast.Service, pkgScope *scopeNode, f *ast.File) (*Service, error) {
	s := &Service{FQN: fqn, Name: as.Name}
	for _, am := range as.Methods {
		inNode, ok := resolveTypeName(lk.tree.root, pkgScope, am.InputType, lk.visible[f.Name])
		if !ok || inNode.kind != symMessage {
			return nil, newErr(UnresolvedType, am.Start(), "rpc input type %q", am.InputType)
		}
		outNode, ok := resolveTypeName(lk.tree.root, pkgScope, am.OutputType, lk.visible[f.Name])
		if !ok || outNode.kind != symMessage {
			return nil, newErr(UnresolvedType, am.Start(), "rpc output type %q", am.OutputType)
		}
		s.Methods = append(s.Methods, &Method{
			Name: am.Name, InputFQN: inNode.fqn, OutputFQN: outNode.fqn,
			ClientStreaming: am.ClientStreaming, ServerStreaming: am.ServerStreaming,
		})
	}
	return s, nil
}
