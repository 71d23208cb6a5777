package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/walletmock/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("method", "eth_chainId")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("method", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("method", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestIsChainID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0x1", true},
		{"0x0", true},
		{"0xaa36a7", true},
		{"0xAA36A7", true},
		{"0x01", false},
		{"1", false},
		{"0x", false},
		{"0xzz", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsChainID(tt.in); got != tt.want {
			t.Errorf("IsChainID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidatorChainIDAndAddress(t *testing.T) {
	v := New()
	v.ChainID("chain_id", "0x5").
		ChainID("empty", "").
		Address("account", "0x71C7656EC7ab88b098defB751B7401B5f6d8976F").
		Address("empty_account", "")
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}

	v2 := New()
	v2.ChainID("chain_id", "5").Address("account", "0x1234")
	if len(v2.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %v", v2.Errors())
	}
}

func TestValidatorValidate_ReturnsInvalidParams(t *testing.T) {
	v := New()
	if err := v.Validate(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}

	v.Check(false, "params", "must be an array or object")
	err := v.Validate()
	rpcErr, ok := errors.AsRpcError(err)
	if !ok {
		t.Fatalf("expected ProviderRpcError, got %T", err)
	}
	if rpcErr.Code != errors.CodeInvalidParams {
		t.Errorf("expected code %d, got %d", errors.CodeInvalidParams, rpcErr.Code)
	}
	if !strings.Contains(rpcErr.Message, "params: must be an array or object") {
		t.Errorf("unexpected message %q", rpcErr.Message)
	}
	data := rpcErr.Data.(map[string]any)
	fields := data["fields"].([]FieldError)
	if len(fields) != 1 || fields[0].Field != "params" {
		t.Errorf("unexpected fields %v", fields)
	}
}

type stateFixture struct {
	ChainID        string   `mapstructure:"chain_id" validate:"required,chainid"`
	NetworkVersion string   `mapstructure:"network_version" validate:"required,numeric"`
	Accounts       []string `mapstructure:"accounts" validate:"dive,eth_addr"`
}

func TestValidate_Struct(t *testing.T) {
	ok := stateFixture{
		ChainID:        "0x1",
		NetworkVersion: "1",
		Accounts:       []string{"0x71C7656EC7ab88b098defB751B7401B5f6d8976F"},
	}
	if err := Validate(ok); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidate_StructErrors(t *testing.T) {
	bad := stateFixture{
		ChainID:        "1",
		NetworkVersion: "",
		Accounts:       []string{"not-an-address"},
	}
	err := Validate(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.(*errors.ProviderRpcError).Message
	for _, want := range []string{
		"chain_id: must be a 0x-prefixed hexadecimal chain id",
		"network_version: is required",
		"accounts[0]: must be a valid Ethereum address",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("SelectedAddress"); got != "selected_address" {
		t.Errorf("expected selected_address, got %q", got)
	}
}
