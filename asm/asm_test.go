package asm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	var l Listing
	pattern := l.NewBlock("", Indent)
	pattern.AddLine(0x00, 0xfc)
	pattern.AddLine(0x0a)
	colors := l.NewBlock("_colors", Indent)
	colors.AddLine(0xf1)

	b := new(bytes.Buffer)
	require.Nil(t, l.Encode(b, "tile"))
	assert.Equal(t, "tile:\n        db 0x00,0xFC\n        db 0x0A\ntile_colors:\n        db 0xF1", b.String())
}

func TestEncodeTerminated(t *testing.T) {
	l := Listing{Terminated: true}
	l.NewBlock("", BitmapIndent).AddLine(0x12)

	b := new(bytes.Buffer)
	require.Nil(t, l.Encode(b, "x"))
	assert.Equal(t, "x:\n       db 0x12\n", b.String())
}

func TestEncodeEmpty(t *testing.T) {
	var l Listing
	l.NewBlock("", Indent)

	b := new(bytes.Buffer)
	require.Nil(t, l.Encode(b, "empty"))
	assert.Equal(t, "empty:", b.String())
}
