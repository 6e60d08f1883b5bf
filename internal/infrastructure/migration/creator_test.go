package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add users table", "add_users_table"},
		{"Add-Users-Table", "add_users_table"},
		{"ADD_USERS_TABLE", "add_users_table"},
		{"add__users__table", "add_users_table"},
		{"Add Users 123", "add_users_123"},
		{"create-product-category", "create_product_category"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "add apartments table", "Create apartments table with basic fields")
	require.NoError(t, err)
	require.NotNil(t, mf)

	// Version is the 14-digit timestamp prefix
	assert.Len(t, mf.Version, 14)

	assert.True(t, strings.HasSuffix(mf.UpPath, ".up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, ".down.sql"))

	upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "add apartments table")
	assert.Contains(t, string(up), "Create apartments table with basic fields")
	assert.Contains(t, string(up), "Write your UP migration SQL here")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "Rollback")
	assert.Contains(t, string(down), "Write your DOWN migration SQL here")
}

func TestCreateMigration_CreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "migrations")

	mf, err := CreateMigration(nested, "test", "test migration")
	require.NoError(t, err)
	require.NotNil(t, mf)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"000001_init_schema", "000002_add_apartments", "000003_add_utilities",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".up.sql"), []byte("-- test"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".down.sql"), []byte("-- test"), 0644))
	}

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Len(t, migrations, 3)
	assert.Contains(t, migrations, "000001_init_schema")
	assert.Contains(t, migrations, "000002_add_apartments")
	assert.Contains(t, migrations, "000003_add_utilities")
}

func TestListMigrations_EmptyDirectory(t *testing.T) {
	migrations, err := ListMigrations(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, migrations)
}

func TestListMigrations_NonexistentDirectory(t *testing.T) {
	migrations, err := ListMigrations("/nonexistent/path/to/migrations")
	require.NoError(t, err)
	assert.Empty(t, migrations)
}

func TestListMigrations_SkipsUnrelatedEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_init.up.sql"), []byte("test"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_init.down.sql"), []byte("test"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("test"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitkeep"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.up.sql"), 0755))

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_init"}, migrations)
}
