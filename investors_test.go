package fundboard

import (
	"errors"
	"strings"
	"testing"
)

const investorCSV = "Full Name,Invested Capital,Total Shares\n" +
	"Alice Martin,\"€ 2,144.68\",150\n" +
	"Bob Visser,\"€ 1.500,00\",100\n" +
	"Carol Santos,\"€ 0,00\",12.5\n"

func TestDecodeInvestors(t *testing.T) {
	tab, err := DecodeInvestors(strings.NewReader(investorCSV), "EUR")
	if err != nil {
		t.Fatalf("DecodeInvestors() error = %v", err)
	}
	if len(tab.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(tab.Records))
	}

	alice := tab.Records[0]
	if alice.Name != "Alice Martin" {
		t.Errorf("Records[0].Name = %q, want Alice Martin", alice.Name)
	}
	if !alice.Invested.Equal(EUR(2144.68)) {
		t.Errorf("Records[0].Invested = %s, want %s", alice.Invested, EUR(2144.68))
	}
	if !tab.Records[1].Invested.Equal(EUR(1500)) {
		t.Errorf("Records[1].Invested = %s, want %s", tab.Records[1].Invested, EUR(1500))
	}
	// fractional shares are kept exact, not truncated
	if !tab.Records[2].Shares.Equal(Q(12.5)) {
		t.Errorf("Records[2].Shares = %s, want 12.5", tab.Records[2].Shares)
	}
}

func TestDecodeInvestors_headerAliases(t *testing.T) {
	csv := "Name,Invested Capital,Shares\nAlice,100,10\n"
	tab, err := DecodeInvestors(strings.NewReader(csv), "EUR")
	if err != nil {
		t.Fatalf("DecodeInvestors() error = %v", err)
	}
	if len(tab.Records) != 1 || tab.Records[0].Name != "Alice" {
		t.Errorf("Records = %+v, want one record named Alice", tab.Records)
	}
}

func TestDecodeInvestors_blankName(t *testing.T) {
	csv := "Full Name,Invested Capital,Total Shares\n" +
		"   ,100,10\n"
	_, err := DecodeInvestors(strings.NewReader(csv), "EUR")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("DecodeInvestors() error = %v, want *ValidationError", err)
	}
}

func TestDecodeInvestors_negativeShares(t *testing.T) {
	csv := "Full Name,Invested Capital,Total Shares\n" +
		"Alice,100,-10\n"
	_, err := DecodeInvestors(strings.NewReader(csv), "EUR")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("DecodeInvestors() error = %v, want *ValidationError", err)
	}
}

func TestDecodeInvestors_badCapital(t *testing.T) {
	csv := "Full Name,Invested Capital,Total Shares\n" +
		"Alice,garbage,10\n"
	_, err := DecodeInvestors(strings.NewReader(csv), "EUR")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("DecodeInvestors() error = %v, want *ParseError", err)
	}
	if perr.Column != "Invested Capital" || perr.Value != "garbage" {
		t.Errorf("ParseError names column %q value %q, want Invested Capital and garbage", perr.Column, perr.Value)
	}
}
