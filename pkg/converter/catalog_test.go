package converter

import (
	"errors"
	"sync"
	"testing"

	"github.com/san-kum/sciunits/pkg/operator"
	"github.com/san-kum/sciunits/pkg/quantity"
	"github.com/san-kum/sciunits/pkg/scientific"
)

func TestCatalyticActivityConverters(t *testing.T) {
	convs := Converters(quantity.CatalyticActivity)
	if len(convs) != 1 {
		t.Fatalf("expected 1 converter, got %d", len(convs))
	}

	c := convs[0]
	if c.Label() != "Amount of Substance from Time" {
		t.Errorf("label = %q", c.Label())
	}
	if c.Operator() != operator.Multiplication {
		t.Errorf("operator = %s", c.Operator())
	}
	if c.Partner() != quantity.Time || c.Quantity() != quantity.CatalyticActivity {
		t.Errorf("unexpected operands: %s", c)
	}

	got, err := c.Compute(scientific.New(2, quantity.Katal), scientific.New(3, quantity.Second))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got.Quantity() != quantity.AmountOfSubstance || got.Unit() != quantity.Mole || got.Magnitude() != 6 {
		t.Errorf("Compute = %s, want 6 mol", got)
	}
}

func TestCompute_TypeMismatch(t *testing.T) {
	c := Converters(quantity.CatalyticActivity)[0]

	tests := []struct {
		name        string
		left, right scientific.Value
		operand     string
		expected    quantity.Quantity
		actual      quantity.Quantity
	}{
		{"wrong partner", scientific.New(2, quantity.Katal), scientific.New(3, quantity.Celsius), "right", quantity.Time, quantity.Temperature},
		{"wrong owner", scientific.New(2, quantity.Mole), scientific.New(3, quantity.Second), "left", quantity.CatalyticActivity, quantity.AmountOfSubstance},
		{"both wrong", scientific.New(2, quantity.Meter), scientific.New(3, quantity.Meter), "left", quantity.CatalyticActivity, quantity.Length},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compute(tt.left, tt.right)
			if !errors.Is(err, scientific.ErrTypeMismatch) {
				t.Fatalf("expected ErrTypeMismatch, got %v", err)
			}
			var tm *TypeMismatchError
			if !errors.As(err, &tm) {
				t.Fatalf("expected *TypeMismatchError, got %T", err)
			}
			if tm.Operand != tt.operand || tm.Expected != tt.expected || tm.Actual != tt.actual {
				t.Errorf("got %+v", tm)
			}
		})
	}
}

func TestCompute_CommutedProduct(t *testing.T) {
	c := Converters(quantity.CatalyticActivity)[0]

	got, err := c.Compute(scientific.New(3, quantity.Second), scientific.New(2, quantity.Katal))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got.Magnitude() != 6 || got.Quantity() != quantity.AmountOfSubstance {
		t.Errorf("Compute = %s, want 6 mol", got)
	}
}

func TestCompute_QuotientIsNotCommuted(t *testing.T) {
	c, ok := Default().Lookup(quantity.AmountOfSubstance, "Catalytic Activity from Time")
	if !ok {
		t.Fatal("missing amount of substance ÷ time")
	}

	got, err := c.Compute(scientific.New(6, quantity.Mole), scientific.New(3, quantity.Second))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got.Magnitude() != 2 || got.Unit() != quantity.Katal {
		t.Errorf("Compute = %s, want 2 kat", got)
	}

	if _, err := c.Compute(scientific.New(3, quantity.Second), scientific.New(6, quantity.Mole)); !errors.Is(err, scientific.ErrTypeMismatch) {
		t.Errorf("swapped quotient operands should mismatch, got %v", err)
	}
}

func TestEveryConverterIsRegistered(t *testing.T) {
	reg := operator.Default()
	for _, q := range quantity.All() {
		for _, c := range Converters(q) {
			e, ok := reg.Lookup(q, c.Partner(), c.Operator())
			if !ok {
				t.Errorf("%s has no registry entry", c)
				continue
			}
			if e.Result != c.Result() {
				t.Errorf("%s: registry says %s", c, e.Result)
			}
		}
	}
}

func TestEveryConverterComputes(t *testing.T) {
	for _, q := range quantity.All() {
		for _, c := range Converters(q) {
			got, err := c.Compute(scientific.New(2, q.SIUnit()), scientific.New(4, c.Partner().SIUnit()))
			if err != nil {
				t.Errorf("%s: %v", c, err)
				continue
			}
			if got.Quantity() != c.Result() {
				t.Errorf("%s produced %s", c, got.Quantity())
			}
		}
	}
}

func TestConverters_OrderStable(t *testing.T) {
	first := Converters(quantity.Energy)
	second := Converters(quantity.Energy)

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("unstable length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d changed between calls", i)
		}
	}

	// mutating the returned slice must not leak into the catalog
	first[0] = nil
	if Converters(quantity.Energy)[0] == nil {
		t.Error("Converters() exposed internal storage")
	}
}

func TestConverters_ConcurrentFirstAccess(t *testing.T) {
	cat := MustNewCatalog(scientific.Default(), builtinDefinitions())

	const workers = 32
	results := make([][]*Converter, workers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-start
			results[idx] = cat.Converters(quantity.Force)
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 1; i < workers; i++ {
		if len(results[i]) != len(results[0]) {
			t.Fatalf("worker %d saw %d converters, worker 0 saw %d", i, len(results[i]), len(results[0]))
		}
		for j := range results[0] {
			if results[i][j] != results[0][j] {
				t.Errorf("worker %d got a different converter at %d; list was built twice", i, j)
			}
		}
	}
}

func TestConverters_Unknown(t *testing.T) {
	if got := Converters(quantity.Unknown); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := Converters(quantity.LuminousIntensity); len(got) != 0 {
		t.Errorf("expected no converters, got %d", len(got))
	}
}

func TestNewCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		defs map[quantity.Quantity][]Definition
		want error
	}{
		{
			name: "unregistered",
			defs: map[quantity.Quantity][]Definition{quantity.CatalyticActivity: {times(quantity.Temperature)}},
			want: ErrUnregisteredRelation,
		},
		{
			name: "duplicate",
			defs: map[quantity.Quantity][]Definition{quantity.CatalyticActivity: {times(quantity.Time), times(quantity.Time)}},
			want: ErrDuplicateDefinition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(scientific.Default(), tt.defs)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestConverter_RegistryDefaultUnit(t *testing.T) {
	reg := operator.MustNewRegistry(operator.Entry{
		Left: quantity.Length, Right: quantity.Length, Operator: operator.Multiplication,
		Result: quantity.Area, Unit: quantity.Hectare,
	})
	cat := MustNewCatalog(scientific.NewCalculator(reg), map[quantity.Quantity][]Definition{
		quantity.Length: {times(quantity.Length)},
	})

	conv, ok := cat.Lookup(quantity.Length, "Area from Length")
	if !ok {
		t.Fatal("missing Area from Length")
	}
	if conv.Unit() != quantity.Hectare {
		t.Errorf("Unit() = %s, want ha", conv.Unit())
	}

	got, err := conv.Compute(scientific.New(100, quantity.Meter), scientific.New(200, quantity.Meter))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got.Unit() != conv.Unit() || got.Magnitude() != 2 {
		t.Errorf("result = %s, want 2 ha", got)
	}

	for _, c := range Converters(quantity.CatalyticActivity) {
		if c.Unit() != c.Result().SIUnit() {
			t.Errorf("%s: builtin unit %s, want SI", c.Label(), c.Unit())
		}
	}
}

func TestCatalog_Quantities(t *testing.T) {
	qs := Default().Quantities()
	if len(qs) != len(quantity.All()) {
		t.Errorf("expected definitions for every quantity, got %d", len(qs))
	}
	for i := 1; i < len(qs); i++ {
		if qs[i-1] >= qs[i] {
			t.Fatal("Quantities() not in declaration order")
		}
	}
}

func TestTypeMismatchError_Message(t *testing.T) {
	err := &TypeMismatchError{Converter: "Amount of Substance from Time", Operand: "right", Expected: quantity.Time, Actual: quantity.Temperature}
	want := "scientific: type mismatch: Amount of Substance from Time: right operand is Temperature, expected Time"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
