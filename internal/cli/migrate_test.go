package cli

import (
	"bytes"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	version uint
	dirty   bool
	upErr   error
	steps   []int
	forced  *int
	closed  bool
}

func (f *fakeMigrator) Up() error {
	if f.upErr != nil {
		return f.upErr
	}
	f.version = 1

	return nil
}

func (f *fakeMigrator) Steps(n int) error {
	f.steps = append(f.steps, n)

	return nil
}

func (f *fakeMigrator) Down() error {
	f.version = 0

	return nil
}

func (f *fakeMigrator) Version() (uint, bool, error) {
	if f.version == 0 {
		return 0, false, migrate.ErrNilVersion
	}

	return f.version, f.dirty, nil
}

func (f *fakeMigrator) Force(version int) error {
	f.forced = &version
	f.version = uint(version)
	f.dirty = false

	return nil
}

func (f *fakeMigrator) Close() (error, error) {
	f.closed = true

	return nil, nil
}

func runMigrate(t *testing.T, m *fakeMigrator, args ...string) (string, error) {
	t.Helper()

	cmd := newMigrateCmd(func() (Migrator, error) { return m, nil })
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestMigrateUp(t *testing.T) {
	m := &fakeMigrator{}

	out, err := runMigrate(t, m, "up")

	require.NoError(t, err)
	assert.Equal(t, "version 1\n", out)
	assert.True(t, m.closed)
}

func TestMigrateUp_NoChangeIsNotAnError(t *testing.T) {
	m := &fakeMigrator{version: 1, upErr: migrate.ErrNoChange}

	out, err := runMigrate(t, m, "up")

	require.NoError(t, err)
	assert.Equal(t, "version 1\n", out)
}

func TestMigrateDown(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		m := &fakeMigrator{version: 1}

		out, err := runMigrate(t, m, "down")

		require.NoError(t, err)
		assert.Equal(t, "no migrations applied\n", out)
	})

	t.Run("steps", func(t *testing.T) {
		m := &fakeMigrator{version: 3}

		_, err := runMigrate(t, m, "down", "2")

		require.NoError(t, err)
		assert.Equal(t, []int{-2}, m.steps)
	})

	t.Run("invalid steps", func(t *testing.T) {
		m := &fakeMigrator{version: 3}

		_, err := runMigrate(t, m, "down", "zero")

		assert.Error(t, err)
		assert.Empty(t, m.steps)
	})
}

func TestMigrateVersion_Dirty(t *testing.T) {
	m := &fakeMigrator{version: 2, dirty: true}

	out, err := runMigrate(t, m, "version")

	require.NoError(t, err)
	assert.Equal(t, "version 2 (dirty)\n", out)
}

func TestMigrateForce(t *testing.T) {
	m := &fakeMigrator{version: 2, dirty: true}

	out, err := runMigrate(t, m, "force", "1")

	require.NoError(t, err)
	require.NotNil(t, m.forced)
	assert.Equal(t, 1, *m.forced)
	assert.Equal(t, "version 1\n", out)
}
