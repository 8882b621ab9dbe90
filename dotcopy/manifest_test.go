package dotcopy

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "single entry",
			input: "vimrc .vimrc\n",
			want:  []Entry{{Name: "vimrc", Dest: ".vimrc", Line: 1}},
		},
		{
			name:  "no trailing newline",
			input: "vimrc .vimrc",
			want:  []Entry{{Name: "vimrc", Dest: ".vimrc", Line: 1}},
		},
		{
			name:  "order is preserved",
			input: "vimrc .vimrc\nbashrc .bashrc\nnvim .config/nvim/init.vim\n",
			want: []Entry{
				{Name: "vimrc", Dest: ".vimrc", Line: 1},
				{Name: "bashrc", Dest: ".bashrc", Line: 2},
				{Name: "nvim", Dest: ".config/nvim/init.vim", Line: 3},
			},
		},
		{
			name:  "extra whitespace",
			input: "  tmux.conf\t\t.tmux.conf   \n",
			want:  []Entry{{Name: "tmux.conf", Dest: ".tmux.conf", Line: 1}},
		},
		{
			name:  "blank lines are skipped",
			input: "\nvimrc .vimrc\n   \n\t\nbashrc .bashrc\n",
			want: []Entry{
				{Name: "vimrc", Dest: ".vimrc", Line: 2},
				{Name: "bashrc", Dest: ".bashrc", Line: 5},
			},
		},
		{
			name:  "apostrophe is literal",
			input: "it's .its\n",
			want:  []Entry{{Name: "it's", Dest: ".its", Line: 1}},
		},
		{
			name:  "backslash is literal",
			input: `win\cfg .cfg` + "\n",
			want:  []Entry{{Name: `win\cfg`, Dest: ".cfg", Line: 1}},
		},
		{
			name:  "hash is literal",
			input: "#notes .notes\n",
			want:  []Entry{{Name: "#notes", Dest: ".notes", Line: 1}},
		},
		{
			name:  "double quotes are literal",
			input: `"vimrc" .vimrc` + "\n",
			want:  []Entry{{Name: `"vimrc"`, Dest: ".vimrc", Line: 1}},
		},
		{
			name:  "CRLF line endings",
			input: "vimrc .vimrc\r\nbashrc .bashrc\r\n",
			want: []Entry{
				{Name: "vimrc", Dest: ".vimrc", Line: 1},
				{Name: "bashrc", Dest: ".bashrc", Line: 2},
			},
		},
		{
			name:  "empty manifest",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{name: "one field", input: "vimrc .vimrc\nbashrc\n", wantLine: 2},
		{name: "three fields", input: "a b c\n", wantLine: 1},
		{name: "first bad line wins", input: "\nvimrc\nalso bad line here\n", wantLine: 2},
		{name: "quoted name with space", input: `"my file" .my-file` + "\n", wantLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrMalformedLine)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantLine, perr.Line)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/root/data/loc.dat", []byte("vimrc .vimrc\n"), 0o644))

	got, err := Load(fsys, "/root/data/loc.dat")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "vimrc", Dest: ".vimrc", Line: 1}}, got)

	_, err = Load(fsys, "/root/data/missing.dat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening manifest")
}
