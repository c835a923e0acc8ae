// Package calculator contains the magnitude-level arithmetic backends used by bigmath.Int.
//
// A Calculator operates on canonical non-negative decimal strings ("0", or a non-zero digit
// followed by digits). Sign bookkeeping is left to the caller. Implementations are stateless
// and may be shared between goroutines.
//
// Implementations register themselves from init() with a priority; Detect returns the
// highest-priority implementation that can be constructed in this process.
package calculator

import (
	"sort"
	"strings"
	"sync"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// Calculator performs primitive operations on canonical non-negative decimal magnitudes.
type Calculator interface {
	// Name returns the name under which the calculator is registered.
	Name() string

	Add(a, b string) string
	// Sub returns a - b, or ErrNegativeResult if a < b.
	Sub(a, b string) (string, error)
	Mul(a, b string) string
	// DivQR returns q and r such that a = q*b + r and 0 <= r < b.
	DivQR(a, b string) (q, r string, err error)
	// Pow returns a^e, with a^0 = 1 for every a.
	Pow(a string, e uint) string
	Gcd(a, b string) string
	// Lsh returns a * 2^n.
	Lsh(a string, n uint) string
	// Rsh returns floor(a / 2^n).
	Rsh(a string, n uint) string
	// Sqrt returns floor(sqrt(a)).
	Sqrt(a string) string
	Cmp(a, b string) int
}

var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrNegativeResult    = errors.New("subtraction would yield a negative magnitude")
	ErrUnknownCalculator = errors.New("unknown calculator")
)

var Logger = logrus.StandardLogger()

type provider struct {
	name     string
	priority int
	factory  func() (Calculator, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]provider{}

	detectOnce sync.Once
	detected   Calculator
)

// Register makes a calculator available under the given name. Higher priorities are
// preferred by Detect. Registering a name twice replaces the earlier registration.
func Register(name string, priority int, factory func() (Calculator, error)) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = provider{name: name, priority: priority, factory: factory}
}

// Names returns the names of all registered calculators, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get constructs the calculator registered under name.
func Get(name string) (Calculator, error) {
	registryMu.RLock()
	p, ok := registry[strings.ToLower(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrUnknownCalculator
	}
	return p.factory()
}

// Detect returns the best available calculator. The choice is made on first use and kept for
// the lifetime of the process.
func Detect() Calculator {
	detectOnce.Do(func() {
		detected = detect()
	})
	return detected
}

func detect() Calculator {
	registryMu.RLock()
	providers := make([]provider, 0, len(registry))
	for _, p := range registry {
		providers = append(providers, p)
	}
	registryMu.RUnlock()

	sort.Slice(providers, func(i, j int) bool {
		if providers[i].priority != providers[j].priority {
			return providers[i].priority > providers[j].priority
		}
		return providers[i].name < providers[j].name
	})

	for _, p := range providers {
		c, err := p.factory()
		if err != nil {
			Logger.Debugf("Calculator %s unavailable, trying next: %v", p.name, err)
			continue
		}
		Logger.Debugf("Using calculator %s", p.name)
		return c
	}
	Logger.Debug("No calculator could be constructed, using portable")
	return Portable{}
}

// Generic algorithms expressed in terms of the other primitives, shared by the backends that
// do not have a native equivalent.

func powBySquaring(c Calculator, a string, e uint) string {
	result := "1"
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = c.Mul(result, base)
		}
		e >>= 1
		if e > 0 {
			base = c.Mul(base, base)
		}
	}
	return result
}

func euclid(c Calculator, a, b string) string {
	for b != "0" {
		_, r, err := c.DivQR(a, b)
		if err != nil {
			panic(errors.WrapPrefix(err, "gcd", 0))
		}
		a, b = b, r
	}
	return a
}

func newtonSqrt(c Calculator, a string) string {
	if a == "0" {
		return "0"
	}
	// 10^ceil(len/2) is above the root.
	x := "1" + strings.Repeat("0", (len(a)+1)/2)
	for {
		q, _, err := c.DivQR(a, x)
		if err != nil {
			panic(errors.WrapPrefix(err, "sqrt", 0))
		}
		y := c.Rsh(c.Add(x, q), 1)
		if c.Cmp(y, x) >= 0 {
			return x
		}
		x = y
	}
}

// rshExceeds reports whether 2^n is certainly larger than every len(a)-digit magnitude,
// using 10^d < 16^d = 2^(4d).
func rshExceeds(a string, n uint) bool {
	return n/4 >= uint(len(a))
}
