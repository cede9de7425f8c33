package thermalctl

import "testing"

func TestStoreGetOrCreate(t *testing.T) {
	st := NewStore(NewParams())

	t.Run("creates on first access", func(t *testing.T) {
		s := st.GetOrCreate("bt:room:t21")
		if s == nil {
			t.Fatal("GetOrCreate() returned nil")
		}
		if s.gainHeat.value != st.params.GainDefault {
			t.Errorf("gainHeat = %v, want default %v", s.gainHeat.value, st.params.GainDefault)
		}
	})

	t.Run("returns same record on repeat access", func(t *testing.T) {
		a := st.GetOrCreate("bt:room:t22")
		a.lastPercent, a.hasLastPercent = 42, true
		b := st.GetOrCreate("bt:room:t22")
		if b.lastPercent != 42 {
			t.Errorf("second GetOrCreate returned a different record: lastPercent = %v, want 42", b.lastPercent)
		}
	})
}

func TestStoreSiblingSeeding(t *testing.T) {
	st := NewStore(NewParams())

	first := st.GetOrCreate("bt:room:t21")
	first.hasMinEffective, first.minEffectivePct = true, 15

	second := st.GetOrCreate("bt:room:t23")
	if !second.hasMinEffective || second.minEffectivePct != 15 {
		t.Errorf("sibling seeding did not carry min_effective_percent: got (%v, %v)", second.hasMinEffective, second.minEffectivePct)
	}
	if second.gainHeat.value != st.params.GainDefault {
		t.Errorf("sibling seeding must not carry gain_est: got %v, want default", second.gainHeat.value)
	}
}

func TestStoreReset(t *testing.T) {
	t.Run("all clears the record", func(t *testing.T) {
		st := NewStore(NewParams())
		s := st.GetOrCreate("bt:room:t21")
		s.gainHeat.value = 0.08
		if err := st.Reset("bt:room:t21", ResetAll); err != nil {
			t.Fatalf("Reset() error = %v", err)
		}
		fresh := st.GetOrCreate("bt:room:t21")
		if fresh.gainHeat.value != st.params.GainDefault {
			t.Errorf("gainHeat after ResetAll = %v, want default", fresh.gainHeat.value)
		}
	})

	t.Run("deadzone_only preserves gain/loss", func(t *testing.T) {
		st := NewStore(NewParams())
		s := st.GetOrCreate("bt:room:t21")
		s.gainHeat.value = 0.08
		s.hasMinEffective, s.minEffectivePct = true, 15

		if err := st.Reset("bt:room:t21", ResetDeadzoneOnly); err != nil {
			t.Fatalf("Reset() error = %v", err)
		}
		if s.hasMinEffective {
			t.Error("min_effective_percent still set after ResetDeadzoneOnly")
		}
		if s.gainHeat.value != 0.08 {
			t.Errorf("gainHeat after ResetDeadzoneOnly = %v, want 0.08", s.gainHeat.value)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		st := NewStore(NewParams())
		if err := st.Reset("bt:room:t21", ResetMode(99)); err == nil {
			t.Error("Reset() with invalid mode returned nil error")
		}
	})
}

func TestStoreClearAndKeys(t *testing.T) {
	st := NewStore(NewParams())
	st.GetOrCreate("bt:living:t21")
	st.GetOrCreate("bt:bed:t19")

	keys := st.Keys("bt:living")
	if len(keys) != 1 || keys[0] != "bt:living:t21" {
		t.Errorf("Keys(prefix) = %v, want [bt:living:t21]", keys)
	}

	st.Clear()
	if len(st.Keys("")) != 0 {
		t.Error("store not empty after Clear()")
	}
}
