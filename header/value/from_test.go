package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-httpheader/header/value"
)

func TestFrom(t *testing.T) {
	t.Parallel()

	al, err := addr.ParseEmailAddressList("sterling@example.com, steve@example.com")
	require.NoError(t, err)

	f := value.NewFrom(al)
	assert.Equal(t, value.FromName, f.Name())
	assert.Equal(t, value.KindFrom, f.Kind())
	assert.Equal(t, "sterling@example.com, steve@example.com", f.Value())
	assert.Equal(t, "From: sterling@example.com, steve@example.com", f.String())

	got := f.AddressList()
	require.Len(t, got, 2)
	assert.Equal(t, "sterling@example.com", got[0].Address())
	assert.Equal(t, "steve@example.com", got[1].Address())
}

func TestParseAddressList(t *testing.T) {
	t.Parallel()

	al := value.ParseAddressList(`"Sterling" <sterling@example.com>, bob@example.com`)
	require.Len(t, al, 2)
	assert.Equal(t, "sterling@example.com", al[0].Address())
	assert.Equal(t, "bob@example.com", al[1].Address())

	// not an address, so the lenient parser takes it
	blah, err := addr.NewMailboxParsed("",
		addr.NewAddrSpecParsed("blah", "", "blah"),
		"", "blah",
	)
	require.NoError(t, err)

	al = value.ParseAddressList("blah")
	assert.Equal(t, addr.AddressList{blah}, al)
}
