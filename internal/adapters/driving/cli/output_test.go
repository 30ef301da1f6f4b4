package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snippets-cli/internal/core/domain"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: "text"},
		{in: "text", want: "text"},
		{in: "json", want: "json"},
		{in: "yaml", want: "yaml"},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteStructured(t *testing.T) {
	defer func() { opts = Options{Output: formatText} }()
	snippet := domain.Snippet{Keyword: "k", Message: "v"}

	opts.Output = formatJSON
	var jsonBuf bytes.Buffer
	require.NoError(t, writeStructured(&jsonBuf, snippet))
	assert.JSONEq(t, `{"keyword":"k","message":"v"}`, jsonBuf.String())

	opts.Output = formatYAML
	var yamlBuf bytes.Buffer
	require.NoError(t, writeStructured(&yamlBuf, snippet))
	assert.Equal(t, "keyword: k\nmessage: v\n", yamlBuf.String())
}

func TestWarn_PlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer

	warn(&buf, "%s has no snippet stored against it", "k")

	assert.Equal(t, "Warning - k has no snippet stored against it\n", buf.String())
	assert.False(t, isTerminal(&buf))
}
