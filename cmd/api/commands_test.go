package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNormalizeCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data":[{"id":"1","name":"Whey","price":100,"onSale":true,"discountPercentage":20}]}`), 0o600))

	out, err := runCmd(t, "", "normalize", path)
	require.NoError(t, err)

	var report struct {
		Shape    string `json:"shape"`
		Key      string `json:"key"`
		Records  int    `json:"records"`
		Products []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "data_wrapper", report.Shape)
	assert.Equal(t, "data", report.Key)
	assert.Equal(t, 1, report.Records)
	require.Len(t, report.Products, 1)
	assert.Equal(t, "Whey", report.Products[0].Name)
}

func TestNormalizeCommand_PresentFromStdin(t *testing.T) {
	out, err := runCmd(t, `[{"id":"1","price":100,"onSale":true,"discountPercentage":20}]`, "normalize", "--present", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"originalPrice": "125.00"`)
	assert.Contains(t, out, `"savings": "25.00"`)
	assert.Contains(t, out, `"label": "20% OFF"`)
}

func TestNormalizeCommand_Unrecognized(t *testing.T) {
	out, err := runCmd(t, `not json`, "normalize", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"shape": "unrecognized"`)
	assert.Contains(t, out, `"products": []`)
}

func TestNormalizeCommand_MissingFile(t *testing.T) {
	_, err := runCmd(t, "", "normalize", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
