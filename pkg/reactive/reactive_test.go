package reactive

import "testing"

func TestSignal_GetSet(t *testing.T) {
	s := NewSignal(1)

	if got := s.Get(); got != 1 {
		t.Errorf("expected initial value 1, got %d", got)
	}

	s.Set(5)
	if got := s.Get(); got != 5 {
		t.Errorf("expected 5 after Set, got %d", got)
	}
}

func TestSignal_Update(t *testing.T) {
	s := NewSignal(10)
	s.Update(func(v int) int { return v * 2 })

	if got := s.Peek(); got != 20 {
		t.Errorf("expected 20, got %d", got)
	}
}

func TestEffect_RunsOnCreationAndOnChange(t *testing.T) {
	s := NewSignal(0)
	runs := 0
	NewEffect(func() {
		s.Get()
		runs++
	})

	if runs != 1 {
		t.Fatalf("expected 1 initial run, got %d", runs)
	}

	s.Set(1)
	s.Set(2)
	if runs != 3 {
		t.Errorf("expected 3 runs after two sets, got %d", runs)
	}
}

func TestEffect_Stop(t *testing.T) {
	s := NewSignal(0)
	runs := 0
	e := NewEffect(func() {
		s.Get()
		runs++
	})

	e.Stop()
	s.Set(1)
	if runs != 1 {
		t.Errorf("expected no runs after Stop, got %d total", runs)
	}

	// Stop is idempotent.
	e.Stop()
}

func TestEffect_DynamicDependencies(t *testing.T) {
	useFirst := NewSignal(true)
	first := NewSignal("a")
	second := NewSignal("b")

	runs := 0
	NewEffect(func() {
		runs++
		if useFirst.Get() {
			first.Get()
		} else {
			second.Get()
		}
	})

	// While useFirst is true, changes to second must not re-run.
	second.Set("bb")
	if runs != 1 {
		t.Fatalf("expected no run for untracked signal, got %d runs", runs)
	}

	useFirst.Set(false)
	if runs != 2 {
		t.Fatalf("expected re-run on branch switch, got %d runs", runs)
	}

	// Dependencies swapped: first is now untracked, second is tracked.
	first.Set("aa")
	if runs != 2 {
		t.Errorf("expected no run for dropped dependency, got %d runs", runs)
	}
	second.Set("bbb")
	if runs != 3 {
		t.Errorf("expected run for new dependency, got %d runs", runs)
	}
}

func TestUntrack(t *testing.T) {
	tracked := NewSignal(1)
	untracked := NewSignal(2)

	runs := 0
	NewEffect(func() {
		runs++
		tracked.Get()
		Untrack(untracked.Get)
	})

	untracked.Set(3)
	if runs != 1 {
		t.Errorf("expected untracked read not to subscribe, got %d runs", runs)
	}

	tracked.Set(4)
	if runs != 2 {
		t.Errorf("expected tracked read to subscribe, got %d runs", runs)
	}
}

func TestBatch_CoalescesEffectRuns(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal(2)

	runs := 0
	var lastSum int
	NewEffect(func() {
		runs++
		lastSum = a.Get() + b.Get()
	})

	Batch(func() {
		a.Set(10)
		b.Set(20)

		// Nothing flushes mid-batch.
		if runs != 1 {
			t.Fatalf("expected no effect runs inside batch, got %d", runs)
		}
	})

	if runs != 2 {
		t.Errorf("expected exactly one run after batch, got %d total", runs)
	}
	if lastSum != 30 {
		t.Errorf("expected effect to see both writes (sum 30), got %d", lastSum)
	}
}

func TestBatch_Nested(t *testing.T) {
	s := NewSignal(0)
	runs := 0
	NewEffect(func() {
		s.Get()
		runs++
	})

	Batch(func() {
		s.Set(1)
		Batch(func() {
			s.Set(2)
		})
		if runs != 1 {
			t.Fatalf("inner batch must not flush, got %d runs", runs)
		}
	})

	if runs != 2 {
		t.Errorf("expected one flush at outermost batch end, got %d total runs", runs)
	}
}

func TestComputed_LazyAndCached(t *testing.T) {
	s := NewSignal(2)
	computes := 0
	double := NewComputed(func() int {
		computes++
		return s.Get() * 2
	})

	if computes != 0 {
		t.Fatalf("expected no compute before first Get, got %d", computes)
	}

	if got := double.Get(); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	double.Get()
	if computes != 1 {
		t.Errorf("expected cached second Get, got %d computes", computes)
	}

	s.Set(3)
	if got := double.Get(); got != 6 {
		t.Errorf("expected 6 after dependency change, got %d", got)
	}
	if computes != 2 {
		t.Errorf("expected recompute after change, got %d computes", computes)
	}
}

func TestComputed_NotifiesEffects(t *testing.T) {
	s := NewSignal(1)
	double := NewComputed(func() int { return s.Get() * 2 })

	var seen []int
	NewEffect(func() {
		seen = append(seen, double.Get())
	})

	s.Set(5)

	if len(seen) != 2 || seen[0] != 2 || seen[1] != 10 {
		t.Errorf("expected effect to see [2 10], got %v", seen)
	}
}

func TestSignal_Subscribe(t *testing.T) {
	s := NewSignal(0)

	var seen []int
	unsub := s.Subscribe(func(v int) {
		seen = append(seen, v)
	})

	if len(seen) != 0 {
		t.Fatalf("expected no callback for current value, got %v", seen)
	}

	s.Set(1)
	s.Set(2)
	unsub()
	s.Set(3)

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("expected [1 2], got %v", seen)
	}
}
