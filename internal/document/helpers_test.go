package document

import "time"

var fixedNow = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		DueDays:        14,
		AdvancePercent: 50,
		PaymentMethod:  "Bankovní převod",
		Now:            func() time.Time { return fixedNow },
	}
}

func validSeller() PartyInput {
	return PartyInput{
		Name:        "Novák s.r.o.",
		Address:     "Dlouhá 12",
		City:        "Praha",
		Zip:         "11000",
		ICO:         "12345678",
		DIC:         "CZ12345678",
		Phone:       "777123456",
		Email:       "fakturace@novak.cz",
		BankAccount: "123456789/0100",
	}
}

func validBuyer() *PartyInput {
	return &PartyInput{
		Name:    "Svoboda a.s.",
		Address: "Krátká 3",
		City:    "Brno",
		Zip:     "602 00",
		ICO:     "87654321",
	}
}

func validForm() FormInput {
	return FormInput{
		DocNumber:   "2026001",
		DocDate:     "2026-10-18",
		DueDate:     "2026-11-01",
		TaxableDate: "2026-10-18",
		Seller:      validSeller(),
		Buyer:       validBuyer(),
		Items: []ItemInput{
			{Name: "Konzultace", Quantity: "2", UnitPrice: "100", VATRate: "21"},
			{Name: "Doprava", Quantity: "1", UnitPrice: "50", VATRate: "0"},
		},
	}
}
