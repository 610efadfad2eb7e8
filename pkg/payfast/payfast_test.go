package payfast

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(sandbox bool) *Client {
	return New(Config{
		MerchantID:  "10000100",
		MerchantKey: "46f0cd694581a",
		Passphrase:  "jt7NOE43FZPn",
		Sandbox:     sandbox,
		ReturnURL:   "https://example.com/return",
		CancelURL:   "https://example.com/cancel",
		NotifyURL:   "https://example.com/notify",
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "123.45", FormatAmount(12345))
	assert.Equal(t, "0.05", FormatAmount(5))
	assert.Equal(t, "10.00", FormatAmount(1000))
	assert.Equal(t, "-1.50", FormatAmount(-150))
}

func TestHosts(t *testing.T) {
	assert.Equal(t, "https://www.payfast.co.za/eng/process", testClient(false).ProcessURL())
	assert.Equal(t, "https://sandbox.payfast.co.za/eng/process", testClient(true).ProcessURL())
}

func TestCheckoutSigned(t *testing.T) {
	c := testClient(true)
	fields := c.Checkout(CheckoutRequest{
		MerchantPaymentID: "booking-42",
		Amount:            185000,
		ItemName:          "Seaview Villa, 3 nights",
	})

	last := fields[len(fields)-1]
	require.Equal(t, "signature", last.Name)
	assert.Len(t, last.Value, 32)

	// The signature verifies against the fields that precede it.
	assert.Equal(t, last.Value, Signature(fields[:len(fields)-1], "jt7NOE43FZPn"))

	byName := map[string]string{}
	for _, f := range fields {
		byName[f.Name] = f.Value
	}
	assert.Equal(t, "1850.00", byName["amount"])
	assert.Equal(t, "booking-42", byName["m_payment_id"])
}

func TestSignatureSensitivity(t *testing.T) {
	fields := []Field{{"m_payment_id", "x"}, {"amount", "10.00"}}

	base := Signature(fields, "")
	assert.NotEqual(t, base, Signature(fields, "secret"), "passphrase must change signature")

	reordered := []Field{{"amount", "10.00"}, {"m_payment_id", "x"}}
	assert.NotEqual(t, base, Signature(reordered, ""), "field order must change signature")

	withEmpty := []Field{{"m_payment_id", "x"}, {"custom_str1", ""}, {"amount", "10.00"}}
	assert.Equal(t, base, Signature(withEmpty, ""), "empty fields are skipped")
}

func TestSignatureEncoding(t *testing.T) {
	a := Signature([]Field{{"item_name", "Villa stay & breakfast"}}, "")
	b := Signature([]Field{{"item_name", "Villa stay + breakfast"}}, "")
	assert.NotEqual(t, a, b)
}

// signedITN builds an ITN body whose signature verifies for the test client.
func signedITN(t *testing.T, passphrase string, pairs ...Field) ITN {
	t.Helper()
	fields := append([]Field{}, pairs...)
	fields = append(fields, Field{"signature", Signature(fields, passphrase)})
	return ITN{Fields: fields}
}

func TestVerifyITN(t *testing.T) {
	c := testClient(true)

	itn := signedITN(t, "jt7NOE43FZPn",
		Field{"m_payment_id", "booking-42"},
		Field{"pf_payment_id", "1089250"},
		Field{"payment_status", "COMPLETE"},
		Field{"amount_gross", "1850.00"},
	)

	err := c.VerifyITN(itn, VerifyOptions{
		SourceHost:           "sandbox.payfast.co.za",
		ExpectedAmount:       185000,
		SkipServerValidation: true,
	})
	assert.NoError(t, err)
}

func TestVerifyITNAcceptsRootedSourceHost(t *testing.T) {
	c := testClient(true)
	itn := signedITN(t, "jt7NOE43FZPn",
		Field{"m_payment_id", "booking-42"},
		Field{"amount_gross", "1850.00"},
	)

	// Reverse lookups return rooted, sometimes differently-cased names.
	for _, host := range []string{
		"www.payfast.co.za.",
		"sandbox.payfast.co.za.",
		"W1W.PayFast.co.za.",
	} {
		err := c.VerifyITN(itn, VerifyOptions{
			SourceHost:           host,
			SkipServerValidation: true,
		})
		assert.NoError(t, err, host)
	}
}

func TestVerifyITNFailures(t *testing.T) {
	c := testClient(true)
	good := signedITN(t, "jt7NOE43FZPn",
		Field{"m_payment_id", "booking-42"},
		Field{"amount_gross", "1850.00"},
	)

	t.Run("tampered amount", func(t *testing.T) {
		tampered := ITN{Fields: append([]Field{}, good.Fields...)}
		tampered.Fields[1] = Field{"amount_gross", "1.00"}
		err := c.VerifyITN(tampered, VerifyOptions{SkipServerValidation: true})
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("untrusted host", func(t *testing.T) {
		err := c.VerifyITN(good, VerifyOptions{
			SourceHost:           "evil.example.com",
			SkipServerValidation: true,
		})
		assert.ErrorIs(t, err, ErrUntrustedSource)
	})

	t.Run("amount mismatch", func(t *testing.T) {
		err := c.VerifyITN(good, VerifyOptions{
			ExpectedAmount:       100,
			SkipServerValidation: true,
		})
		assert.ErrorIs(t, err, ErrAmountMismatch)
	})
}

func TestVerifyITNServerValidation(t *testing.T) {
	c := testClient(true)
	itn := signedITN(t, "jt7NOE43FZPn",
		Field{"m_payment_id", "booking-42"},
		Field{"amount_gross", "1850.00"},
	)

	t.Run("valid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "booking-42", r.Form.Get("m_payment_id"))
			_, _ = w.Write([]byte("VALID"))
		}))
		defer srv.Close()

		err := c.VerifyITN(itn, VerifyOptions{ValidateURL: srv.URL})
		assert.NoError(t, err)
	})

	t.Run("invalid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("INVALID"))
		}))
		defer srv.Close()

		err := c.VerifyITN(itn, VerifyOptions{ValidateURL: srv.URL})
		assert.ErrorIs(t, err, ErrNotValidated)
	})
}

func TestParseITN(t *testing.T) {
	body := "m_payment_id=booking-42&payment_status=COMPLETE&item_name=Seaview+Villa&signature=abc"
	itn, err := ParseITN(body)
	require.NoError(t, err)

	assert.Equal(t, "booking-42", itn.Get("m_payment_id"))
	assert.Equal(t, "Seaview Villa", itn.Get("item_name"))
	assert.Equal(t, "abc", itn.Get("signature"))
	assert.Equal(t, "", itn.Get("missing"))

	// Order preserved.
	assert.Equal(t, "m_payment_id", itn.Fields[0].Name)

	_, err = ParseITN("")
	assert.Error(t, err)

	_, err = ParseITN("a=%zz")
	assert.Error(t, err)
}

func TestEncodeMatchesGatewayRules(t *testing.T) {
	// Spaces as '+', uppercase hex escapes.
	assert.Equal(t, "a+b", encode("a b"))
	assert.Equal(t, "a%2Fb", encode("a/b"))
	u, _ := url.QueryUnescape(strings.ReplaceAll(encode("née/côte d'ivoire"), "+", "%20"))
	assert.Equal(t, "née/côte d'ivoire", u)
}
