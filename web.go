package wireform

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/wireform/wireform/schema"
)

// Codecs for web-flavored textual grammars: URIs, Basic credentials,
// cookies and url-encoded forms.

// URI converts between RFC 3986 strings and *url.URL.
func URI() Codec[string, *url.URL] {
	return ParsedCodec(url.Parse, (*url.URL).String, schema.StringFormat("uri"))
}

// UsernamePassword is the high-level value of the Credentials codec. An
// absent password is distinct from an empty one.
type UsernamePassword struct {
	Username string
	Password Option[string]
}

// Credentials converts between standard Base64 of "user[:password]" (the
// Basic authentication payload grammar) and UsernamePassword. Input
// without a colon decodes to an absent password, never an empty one.
func Credentials() Codec[string, UsernamePassword] {
	return ParsedCodec(
		func(raw string) (UsernamePassword, error) {
			decoded, err := base64.StdEncoding.DecodeString(raw)
			if err != nil {
				return UsernamePassword{}, err
			}
			user, pass, found := strings.Cut(string(decoded), ":")
			if !found {
				return UsernamePassword{Username: user, Password: None[string]()}, nil
			}
			return UsernamePassword{Username: user, Password: Some(pass)}, nil
		},
		func(up UsernamePassword) string {
			plain := up.Username
			if pass, ok := up.Password.Get(); ok {
				plain += ":" + pass
			}
			return base64.StdEncoding.EncodeToString([]byte(plain))
		},
		schema.StringFormat("basic-credentials"),
	)
}

// Cookies converts between a Cookie request-header line (RFC 6265) and the
// cookie pairs it carries.
func Cookies() Codec[string, []*http.Cookie] {
	return ParsedCodec(
		http.ParseCookie,
		func(cs []*http.Cookie) string {
			pairs := make([]string, len(cs))
			for i, c := range cs {
				pairs[i] = c.Name + "=" + c.Value
			}
			return strings.Join(pairs, "; ")
		},
		schema.String(),
	)
}

// SetCookie converts between a Set-Cookie header line and a single cookie
// with attributes.
func SetCookie() Codec[string, *http.Cookie] {
	return ParsedCodec(
		http.ParseSetCookie,
		(*http.Cookie).String,
		schema.String(),
	)
}

// FormField is one key/value pair of a url-encoded form, order-preserving.
type FormField struct {
	Key   string
	Value string
}

// FormSeq converts between an application/x-www-form-urlencoded string and
// its fields in wire order (repeated keys stay repeated).
func FormSeq() Codec[string, []FormField] {
	c := ParsedCodec(parseFormSeq, encodeFormSeq, nil)
	return c.WithFormat(FormatXWwwFormURLEncoded)
}

// Form converts between an application/x-www-form-urlencoded string and
// url.Values. Key order is not preserved; encode uses the canonical sorted
// form.
func Form() Codec[string, url.Values] {
	c := ParsedCodec(url.ParseQuery, url.Values.Encode, nil)
	return c.WithFormat(FormatXWwwFormURLEncoded)
}

func parseFormSeq(raw string) ([]FormField, error) {
	var fields []FormField
	for _, seg := range strings.Split(raw, "&") {
		if seg == "" {
			continue
		}
		k, v, _ := strings.Cut(seg, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("form key %q: %w", k, err)
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("form value %q: %w", v, err)
		}
		fields = append(fields, FormField{Key: key, Value: val})
	}
	return fields, nil
}

func encodeFormSeq(fields []FormField) string {
	b := &strings.Builder{}
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.Value))
	}
	return b.String()
}
