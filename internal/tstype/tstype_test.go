package tstype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tstranslate/internal/symbols"
	"tstranslate/internal/tstype"
)

func TestNewInternerRegistersBuiltins(t *testing.T) {
	in := tstype.NewInterner()

	assert.Equal(t, tstype.KindString, in.KindOf(in.Builtins.String))
	assert.Equal(t, tstype.KindNumber, in.KindOf(in.Builtins.Number))
	assert.Equal(t, tstype.KindNever, in.KindOf(in.Builtins.Never))
	assert.True(t, in.Builtins.Any.IsValid())
}

func TestKindHasAndAny(t *testing.T) {
	k := tstype.KindString | tstype.KindUnion
	assert.True(t, k.Has(tstype.KindString))
	assert.True(t, k.Any(tstype.KindUnion|tstype.KindObject))
	assert.False(t, k.Has(tstype.KindObject))
}

func TestKindIsExactlyNonPrimitive(t *testing.T) {
	assert.True(t, tstype.KindNonPrimitive.IsExactlyNonPrimitive())
	assert.False(t, (tstype.KindNonPrimitive | tstype.KindObject).IsExactlyNonPrimitive())
}

func TestReferenceTypeArguments(t *testing.T) {
	in := tstype.NewInterner()
	elem := in.Builtins.String
	ref := in.NewType(tstype.Type{
		Kind:          tstype.KindObject,
		ObjectFlags:   tstype.ObjectFlagReference,
		Target:        in.Builtins.String,
		TypeArguments: []tstype.TypeID{elem},
	})

	require.True(t, ref.IsValid())
	assert.Equal(t, []tstype.TypeID{elem}, in.TypeArgumentsOf(ref))
	assert.Equal(t, in.Builtins.String, in.TargetOf(ref))
}

func TestUnionMembers(t *testing.T) {
	in := tstype.NewInterner()
	union := in.NewType(tstype.Type{
		Kind:    tstype.KindUnion,
		Members: []tstype.TypeID{in.Builtins.String, in.Builtins.Number},
	})

	members := in.MembersOf(union)
	require.Len(t, members, 2)
	assert.Equal(t, in.Builtins.String, members[0])
	assert.Equal(t, in.Builtins.Number, members[1])
}

func TestAnonymousObjectIndexable(t *testing.T) {
	ty := tstype.Type{
		Kind:            tstype.KindObject,
		ObjectFlags:     tstype.ObjectFlagAnonymous,
		StringIndexType: tstype.TypeID(3),
	}
	assert.True(t, ty.IsIndexable())
	assert.False(t, ty.IsCallable())
}

func TestTupleReferenceDetection(t *testing.T) {
	tuple := tstype.Type{Kind: tstype.KindObject, ObjectFlags: tstype.ObjectFlagTuple}
	ref := tstype.Type{Kind: tstype.KindObject, ObjectFlags: tstype.ObjectFlagReference}
	assert.True(t, ref.IsTupleReference(&tuple))
	assert.False(t, ref.IsTupleReference(&ref))
}

func TestSignatureRequiresRealDeclaration(t *testing.T) {
	jsdocOnly := tstype.Signature{IsJSDocOnly: true}
	assert.False(t, jsdocOnly.HasRealDeclaration())

	real := tstype.Signature{Declaration: symbols.DeclID(1)}
	assert.True(t, real.HasRealDeclaration())
}

func TestInvalidIDsReturnZeroValues(t *testing.T) {
	in := tstype.NewInterner()
	assert.Nil(t, in.Type(tstype.NoTypeID))
	assert.Equal(t, tstype.Kind(0), in.KindOf(tstype.NoTypeID))
	assert.Equal(t, symbols.NoSymbolID, in.SymbolOf(tstype.NoTypeID))
	assert.Nil(t, in.Signature(tstype.NoSignatureID))
	assert.Nil(t, in.Parameter(tstype.NoParameterID))
}
