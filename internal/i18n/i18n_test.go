package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasEnglishAndVietnamese(t *testing.T) {
	b := Default()

	assert.True(t, b.Has("en"))
	assert.True(t, b.Has("vi"))

	langs := b.Languages()
	require.Len(t, langs, 2)
	assert.Equal(t, BaseLocale, langs[0].Code)
	assert.Equal(t, "Tiếng Việt", langs[1].Name)
}

func TestDefault_LocalesShareKeys(t *testing.T) {
	b := Default()
	assert.Equal(t, b.Keys("en"), b.Keys("vi"))
}

func TestMatch(t *testing.T) {
	b := Default()
	tests := []struct {
		in   string
		want string
	}{
		{"", "en"},
		{"en", "en"},
		{"en_US", "en"},
		{"vi", "vi"},
		{"vi-VN", "vi"},
		{"fr", "en"},
		{"not a tag!", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Match(tt.in))
		})
	}
}

func TestPrinter_Sprintf(t *testing.T) {
	en := NewPrinter("en")
	vi := NewPrinter("vi")

	assert.Equal(t, "Step 2 of 5", en.Sprintf("progress.step", 2, 5))
	assert.Equal(t, "Bước 2 của 5", vi.Sprintf("progress.step", 2, 5))
	assert.Equal(t, "Comparing A[0] and B[1]", en.Sprintf("merge.comparing", 0, 1))
	assert.Equal(t, "vi", vi.Lang())
}

func TestPrinter_NilUsesBaseLocale(t *testing.T) {
	var p *Printer
	assert.Equal(t, "Merge complete", p.Sprintf("merge.complete"))
	assert.Equal(t, BaseLocale, p.Lang())
}

func TestNumAndList(t *testing.T) {
	assert.Equal(t, "-1000000", Num(-1_000_000))
	assert.Equal(t, "1, -2, 3", List([]int64{1, -2, 3}))
	assert.Empty(t, List(nil))
}

func TestLoadFromFS_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name:  "no catalogs",
			files: map[string]string{"other.txt": "x"},
		},
		{
			name: "missing base locale",
			files: map[string]string{
				"locales/vi.yaml": "locale: \"vi\"\nmessages:\n  a: \"b\"\n",
			},
		},
		{
			name: "missing messages",
			files: map[string]string{
				"locales/en.yaml": "locale: \"en\"\n",
			},
		},
		{
			name: "missing locale",
			files: map[string]string{
				"locales/en.yaml": "messages:\n  a: \"b\"\n",
			},
		},
		{
			name: "invalid yaml",
			files: map[string]string{
				"locales/en.yaml": "locale: [\n",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				path := filepath.Join(dir, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
				require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			}
			_, err := LoadFromFS(os.DirFS(dir))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFS_FallbackToBase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "locales"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locales", "en.yaml"),
		[]byte("locale: \"en\"\nmessages:\n  greet: \"hello %[1]s\"\n  only.en: \"english\"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locales", "vi.yaml"),
		[]byte("locale: \"vi\"\nmessages:\n  greet: \"xin chào %[1]s\"\n"), 0o600))

	b, err := LoadFromFS(os.DirFS(dir))
	require.NoError(t, err)

	vi := b.Printer("vi")
	assert.Equal(t, "xin chào An", vi.Sprintf("greet", "An"))
	assert.Equal(t, "english", vi.Sprintf("only.en"))
}
