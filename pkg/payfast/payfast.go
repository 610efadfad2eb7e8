// Package payfast is a thin client for the PayFast payment gateway. It
// builds signed checkout payloads for the hosted payment page and validates
// ITN (instant transaction notification) callbacks: signature check, source
// host check, amount match and the server-side validate round trip.
package payfast

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Gateway hosts. Sandbox is used when Config.Sandbox is set.
const (
	LiveHost    = "www.payfast.co.za"
	SandboxHost = "sandbox.payfast.co.za"

	processPath  = "/eng/process"
	validatePath = "/eng/query/validate"
)

// validHosts are the hosts PayFast sends ITN callbacks from.
var validHosts = map[string]bool{
	"www.payfast.co.za":     true,
	"w1w.payfast.co.za":     true,
	"w2w.payfast.co.za":     true,
	"sandbox.payfast.co.za": true,
}

var (
	// ErrInvalidSignature is returned when an ITN signature does not verify.
	ErrInvalidSignature = errors.New("payfast: invalid ITN signature")
	// ErrUntrustedSource is returned when an ITN arrives from an unknown host.
	ErrUntrustedSource = errors.New("payfast: ITN from untrusted source")
	// ErrAmountMismatch is returned when the ITN gross amount differs from
	// the expected amount.
	ErrAmountMismatch = errors.New("payfast: ITN amount mismatch")
	// ErrNotValidated is returned when the server-side validate call does
	// not answer VALID.
	ErrNotValidated = errors.New("payfast: server validation failed")
)

// Config holds merchant credentials and endpoint selection.
type Config struct {
	MerchantID  string
	MerchantKey string
	// Passphrase is the optional salt passphrase configured on the merchant
	// account; appended to signature input when set.
	Passphrase string
	Sandbox    bool
	ReturnURL  string
	CancelURL  string
	NotifyURL  string
}

// Client talks to the PayFast gateway.
type Client struct {
	cfg  Config
	http *resty.Client
}

// New creates a PayFast client.
func New(cfg Config) *Client {
	return &Client{cfg: cfg, http: resty.New()}
}

// Host returns the gateway host for the configured environment.
func (c *Client) Host() string {
	if c.cfg.Sandbox {
		return SandboxHost
	}
	return LiveHost
}

// ProcessURL returns the hosted payment page URL.
func (c *Client) ProcessURL() string {
	return "https://" + c.Host() + processPath
}

// Field is an ordered form field. PayFast signatures are computed over the
// fields in the order they are posted, so order must be preserved.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CheckoutRequest describes a payment to initiate.
type CheckoutRequest struct {
	MerchantPaymentID string
	// Amount in minor currency units (cents)
	Amount     int64
	ItemName   string
	ItemDesc   string
	EmailAddr  string
	CustomStr1 string
}

// Checkout builds the signed, ordered field set for the hosted payment page.
// The caller renders these as a form POST (or query string) to ProcessURL.
func (c *Client) Checkout(req CheckoutRequest) []Field {
	fields := []Field{
		{"merchant_id", c.cfg.MerchantID},
		{"merchant_key", c.cfg.MerchantKey},
	}
	if c.cfg.ReturnURL != "" {
		fields = append(fields, Field{"return_url", c.cfg.ReturnURL})
	}
	if c.cfg.CancelURL != "" {
		fields = append(fields, Field{"cancel_url", c.cfg.CancelURL})
	}
	if c.cfg.NotifyURL != "" {
		fields = append(fields, Field{"notify_url", c.cfg.NotifyURL})
	}
	if req.EmailAddr != "" {
		fields = append(fields, Field{"email_address", req.EmailAddr})
	}
	fields = append(fields,
		Field{"m_payment_id", req.MerchantPaymentID},
		Field{"amount", FormatAmount(req.Amount)},
		Field{"item_name", req.ItemName},
	)
	if req.ItemDesc != "" {
		fields = append(fields, Field{"item_description", req.ItemDesc})
	}
	if req.CustomStr1 != "" {
		fields = append(fields, Field{"custom_str1", req.CustomStr1})
	}

	fields = append(fields, Field{"signature", Signature(fields, c.cfg.Passphrase)})
	return fields
}

// ITN is a parsed instant transaction notification.
type ITN struct {
	// Fields in received order, signature included.
	Fields []Field
}

// Get returns the value of the named field, or "".
func (n ITN) Get(name string) string {
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// ParseITN decodes an application/x-www-form-urlencoded ITN body preserving
// field order.
func ParseITN(body string) (ITN, error) {
	var itn ITN
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			return ITN{}, fmt.Errorf("payfast: malformed ITN field %q: %w", name, err)
		}
		itn.Fields = append(itn.Fields, Field{Name: name, Value: decoded})
	}
	if len(itn.Fields) == 0 {
		return ITN{}, errors.New("payfast: empty ITN body")
	}
	return itn, nil
}

// VerifyOptions tunes ITN verification.
type VerifyOptions struct {
	// SourceHost is the resolved hostname of the ITN sender; checked against
	// the known PayFast hosts. Empty skips the check (tests).
	SourceHost string
	// ExpectedAmount in minor units; compared to amount_gross. Zero skips.
	ExpectedAmount int64
	// SkipServerValidation disables the validate round trip (tests).
	SkipServerValidation bool
	// ValidateURL overrides the validate endpoint (tests).
	ValidateURL string
}

// VerifyITN runs the full ITN verification: signature, source host, amount
// and the server-side validate call. It returns nil only when every enabled
// check passes.
func (c *Client) VerifyITN(itn ITN, opts VerifyOptions) error {
	// Signature over all fields except the trailing signature itself.
	var signed []Field
	var got string
	for _, f := range itn.Fields {
		if f.Name == "signature" {
			got = f.Value
			continue
		}
		signed = append(signed, f)
	}
	if got == "" || Signature(signed, c.cfg.Passphrase) != got {
		return ErrInvalidSignature
	}

	if opts.SourceHost != "" {
		// Reverse DNS yields rooted names ("www.payfast.co.za.")
		host := strings.TrimSuffix(strings.ToLower(opts.SourceHost), ".")
		if !validHosts[host] {
			return fmt.Errorf("%w: %s", ErrUntrustedSource, opts.SourceHost)
		}
	}

	if opts.ExpectedAmount > 0 {
		if FormatAmount(opts.ExpectedAmount) != itn.Get("amount_gross") {
			return fmt.Errorf("%w: expected %s got %s",
				ErrAmountMismatch, FormatAmount(opts.ExpectedAmount), itn.Get("amount_gross"))
		}
	}

	if opts.SkipServerValidation {
		return nil
	}

	validateURL := opts.ValidateURL
	if validateURL == "" {
		validateURL = "https://" + c.Host() + validatePath
	}

	form := make(map[string]string, len(itn.Fields))
	for _, f := range itn.Fields {
		form[f.Name] = f.Value
	}
	resp, err := c.http.R().SetFormData(form).Post(validateURL)
	if err != nil {
		return fmt.Errorf("payfast: validate request failed: %w", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(resp.String()), "VALID") {
		return ErrNotValidated
	}
	return nil
}

// Signature computes the MD5 parameter signature over the fields in order,
// with the passphrase appended when non-empty. Empty-valued fields are
// skipped, per the gateway's signing rules.
func Signature(fields []Field, passphrase string) string {
	var b strings.Builder
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(encode(f.Value))
	}
	if passphrase != "" {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString("passphrase=")
		b.WriteString(encode(passphrase))
	}
	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// encode applies the gateway's URL encoding: spaces become '+', hex escapes
// are uppercase.
func encode(v string) string {
	escaped := url.QueryEscape(v)
	var b strings.Builder
	for i := 0; i < len(escaped); i++ {
		if escaped[i] == '%' && i+2 < len(escaped) {
			b.WriteByte('%')
			b.WriteString(strings.ToUpper(escaped[i+1 : i+3]))
			i += 2
			continue
		}
		b.WriteByte(escaped[i])
	}
	return b.String()
}

// FormatAmount renders minor currency units as the gateway's decimal string
// ("12345" cents -> "123.45").
func FormatAmount(minor int64) string {
	neg := ""
	if minor < 0 {
		neg = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", neg, minor/100, minor%100)
}
