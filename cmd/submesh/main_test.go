package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMesh_InspectVerify(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "mesh", "--dir", dir, "--boxes", "2", "--max-size", "0.5", "--compression", "zstd")
	require.NoError(t, err)
	assert.Contains(t, out, "submeshes=")

	_, err = os.Stat(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)

	out, err = run(t, "inspect", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "root=compound")
	assert.Contains(t, out, "compression=zstd")

	out, err = run(t, "verify", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok:")
}

func TestMesh_ParamsFile(t *testing.T) {
	dir := t.TempDir()
	params := filepath.Join(dir, "params.toml")
	require.NoError(t, os.WriteFile(params, []byte("algorithm = \"volume\"\nmax_size = 1.0\n"), 0o644))

	_, err := run(t, "mesh", "--dir", filepath.Join(dir, "out"), "--params", params, "--boxes", "1",
		"--log-format", "json", "--log-level", "debug")
	require.NoError(t, err)

	out, err := run(t, "inspect", "--dir", filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Contains(t, out, "solid")
}

func TestMesh_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "mesh", "--dir", dir, "--compression", "brotli")
	assert.Error(t, err)

	_, err = run(t, "mesh", "--dir", dir, "--codec", "msgpack")
	assert.Error(t, err)

	_, err = run(t, "mesh", "--dir", dir, "--boxes", "0")
	assert.Error(t, err)

	_, err = run(t, "mesh", "--store", "s3")
	assert.ErrorContains(t, err, "--bucket")

	_, err = run(t, "mesh", "--dir", dir, "--log-format", "xml")
	assert.Error(t, err)

	_, err = run(t, "inspect", "--dir", filepath.Join(dir, "absent"))
	assert.Error(t, err)
}
