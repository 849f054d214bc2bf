package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `env:"NAME,required"`
	Contacts string `env:"CONTACTS"`
	ID       int64  `env:"ID"`
	Debug    bool   `env:"DEBUG"`
	Skipped  string
	hidden   string `env:"HIDDEN"`
}

func TestMarshalEnv(t *testing.T) {
	out, err := MarshalEnv(&sample{Name: "FromGood", ID: 42, Debug: true, Skipped: "x", hidden: "y"})
	require.NoError(t, err)
	assert.Equal(t, "NAME=FromGood\nID=42\nDEBUG=true\n", out)
}

func TestMarshalEnv_Empty(t *testing.T) {
	out, err := MarshalEnv(&sample{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMarshalEnv_NotAStructPointer(t *testing.T) {
	_, err := MarshalEnv(sample{})
	assert.Error(t, err)
}

func TestMarshalEnv_QuotedValuesRoundTrip(t *testing.T) {
	in := &sample{Name: "From Good", Contacts: "info@fromgood.ru #1, +7 (495) 973-31-39"}
	out, err := MarshalEnv(in)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(out), 0600))

	values, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, in.Name, values["NAME"])
	assert.Equal(t, in.Contacts, values["CONTACTS"])
}
