package value

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"
)

// From is the From field. The body is kept as given and interpreted as a
// mailbox list on demand.
type From struct {
	body string
}

// NewFrom returns a From value for the given addresses.
func NewFrom(al addr.AddressList) From {
	return From{al.String()}
}

// ParseFrom returns a From value for the body. It never fails because
// AddressList accepts anything.
func ParseFrom(body string) From {
	return From{body}
}

// AddressList returns the addresses with ParseAddressList.
func (v From) AddressList() addr.AddressList {
	return ParseAddressList(v.body)
}

// Name returns FromName.
func (From) Name() string { return FromName }

// Value returns the body.
func (v From) Value() string { return v.body }

// Kind returns KindFrom.
func (From) Kind() Kind { return KindFrom }

// String returns the wire line.
func (v From) String() string { return Render(v) }

func (From) isValue() {}

// ParseAddressList parses body as an address list. It tries the strict parser
// in github.com/zostay/go-addr first. When that fails it falls back to a
// lenient splitter that returns something for any input, however odd.
func ParseAddressList(body string) addr.AddressList {
	al, err := addr.ParseEmailAddressList(body)
	if err != nil {
		al = parseEmailAddressList(body)
	}

	return al
}

// parseEmailAddressList is the lenient fallback. It splits on commas, trims
// each piece, pulls out parenthesized comments, treats the last word as the
// address and everything before it as the display name. Groups are not
// recognized.
func parseEmailAddressList(v string) addr.AddressList {
	extractComments := func(s string) (string, string) {
		var clean, comment strings.Builder
		nestLevel := 0
		for _, c := range s {
			switch {
			case c == '(':
				nestLevel++
				if nestLevel > 1 {
					comment.WriteRune(c)
				}
			case c == ')':
				nestLevel--
				switch {
				case nestLevel == 0:
				case nestLevel < 0:
					nestLevel = 0
					clean.WriteRune(c)
				default:
					comment.WriteRune(c)
				}
			case nestLevel > 0:
				comment.WriteRune(c)
			default:
				clean.WriteRune(c)
			}
		}

		return clean.String(), comment.String()
	}

	mbs := strings.Split(v, ",")
	as := make(addr.AddressList, 0, len(mbs))
	for _, orig := range mbs {
		mb, com := extractComments(orig)

		parts := strings.Fields(mb)
		if len(parts) == 0 {
			continue
		}

		dn := strings.Join(parts[:len(parts)-1], " ")
		email := strings.Trim(parts[len(parts)-1], "<>")

		var addrSpec *addr.AddrSpec
		if i := strings.IndexByte(email, '@'); i > -1 {
			addrSpec = addr.NewAddrSpecParsed(email[:i], email[i+1:], email)
		} else {
			addrSpec = addr.NewAddrSpecParsed(email, "", email)
		}

		mailbox, err := addr.NewMailboxParsed(dn, addrSpec, strings.TrimSpace(com), orig)
		if err != nil {
			mailbox, _ = addr.NewMailboxParsed(dn, addrSpec, "", orig)
		}

		as = append(as, mailbox)
	}

	return as
}
