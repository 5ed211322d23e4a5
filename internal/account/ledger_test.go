package account

import "testing"

func TestUpdateWalletBalance(t *testing.T) {
	m, _ := newTestManager(t)
	u, err := m.Create(CreateInput{})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := m.UpdateWalletBalance(u.ID, 150); err != nil {
		t.Fatalf("UpdateWalletBalance error: %v", err)
	}
	if err := m.UpdateWalletBalance(u.ID, -40.5); err != nil {
		t.Fatalf("UpdateWalletBalance error: %v", err)
	}

	got, err := m.Get(u.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.WalletBalance != 109.5 {
		t.Fatalf("wallet = %v, want 109.5", got.WalletBalance)
	}
}

func TestUpdateWalletBalanceUnknownUserIsNoOp(t *testing.T) {
	m, st := newTestManager(t)
	if err := m.UpdateWalletBalance("ZZZZZZ", 100); err != nil {
		t.Fatalf("UpdateWalletBalance error: %v", err)
	}
	users, _, err := st.Users()
	if err != nil {
		t.Fatalf("Users error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("no-op credit created a record: %+v", users)
	}
}

func TestAddWeightEntryAppendsAndSetsCurrent(t *testing.T) {
	m, _ := newTestManager(t)
	u, err := m.Create(CreateInput{})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := m.AddWeightEntry(u.ID, 84.2); err != nil {
		t.Fatalf("AddWeightEntry error: %v", err)
	}
	if err := m.AddWeightEntry(u.ID, 82.5); err != nil {
		t.Fatalf("AddWeightEntry error: %v", err)
	}

	got, err := m.Get(u.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(got.WeightHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(got.WeightHistory))
	}
	if got.WeightHistory[0].Weight != 84.2 || got.WeightHistory[1].Weight != 82.5 {
		t.Fatalf("history order broken: %+v", got.WeightHistory)
	}
	if got.CurrentWeight == nil || *got.CurrentWeight != 82.5 {
		t.Fatalf("currentWeight = %v, want 82.5", got.CurrentWeight)
	}
	if got.WeightHistory[0].Date == "" {
		t.Fatal("weight entries must carry a date")
	}
}

func TestAddWeightEntrySameValueTwice(t *testing.T) {
	m, _ := newTestManager(t)
	u, err := m.Create(CreateInput{})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := m.AddWeightEntry(u.ID, 82.5); err != nil {
		t.Fatalf("AddWeightEntry error: %v", err)
	}
	if err := m.AddWeightEntry(u.ID, 82.5); err != nil {
		t.Fatalf("AddWeightEntry error: %v", err)
	}

	got, err := m.Get(u.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(got.WeightHistory) != 2 {
		t.Fatalf("history length = %d, want 2 entries for repeated value", len(got.WeightHistory))
	}
	if got.CurrentWeight == nil || *got.CurrentWeight != 82.5 {
		t.Fatalf("currentWeight = %v, want 82.5", got.CurrentWeight)
	}
}

func TestAddWeightEntryUnknownUserIsNoOp(t *testing.T) {
	m, _ := newTestManager(t)
	if err := m.AddWeightEntry("ZZZZZZ", 80); err != nil {
		t.Fatalf("AddWeightEntry error: %v", err)
	}
}
