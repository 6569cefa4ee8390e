package filter

import (
	"maps"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/shopspring/decimal"

	"github.com/s0up4200/nomics/nomics"
)

// DefaultCacheSize is the number of compiled expressions NewExprCompiler keeps
const DefaultCacheSize = 100

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	envPool    *sync.Pool
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache sets the compiled expression cache size, 0 disables caching
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		c.cacheSize = size
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cacheSize   int
	cache       *lruCache
	envPool     *sync.Pool
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: helperFunctions(),
		cacheSize:   DefaultCacheSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cacheSize > 0 {
		c.cache = newLRUCache(c.cacheSize)
	}

	helpers := c.helperFuncs
	c.envPool = &sync.Pool{
		New: func() any {
			env := make(map[string]any, len(helpers)+24)
			maps.Copy(env, helpers)
			return env
		},
	}

	return c
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(expression); ok {
			return cached, nil
		}
	}

	// Compile against a typed sample environment so unknown fields and type
	// mismatches fail here rather than per row
	program, err := expr.Compile(expression,
		expr.Env(c.sampleEnv()),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		envPool:    c.envPool,
	}

	if c.cache != nil {
		c.cache.put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.len()
	}
	return 0
}

func (c *exprCompiler) sampleEnv() map[string]any {
	env := make(map[string]any, len(c.helperFuncs)+24)
	maps.Copy(env, c.helperFuncs)
	fillTickerEnv(env, nomics.Ticker{})
	return env
}

// Evaluate evaluates the filter against a ticker row
func (f *exprFilter) Evaluate(ticker nomics.Ticker) (bool, error) {
	env := f.envPool.Get().(map[string]any)
	defer f.envPool.Put(env)

	fillTickerEnv(env, ticker)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Symbol:     ticker.Symbol,
			Err:        err,
		}
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// helperFunctions creates the static helper functions available to every expression
func helperFunctions() map[string]any {
	return map[string]any{
		// Case-insensitive string helpers. contains, startsWith and endsWith are
		// expr operators and cannot be redeclared as functions.
		"containsFold": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefixFold": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffixFold": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		// Date helpers
		"now": time.Now,
		"hoursSince": func(t time.Time) float64 {
			return time.Since(t).Hours()
		},
	}
}

// fillTickerEnv writes the ticker row and its closures into env, overwriting the
// previous row's values
func fillTickerEnv(env map[string]any, t nomics.Ticker) {
	env["ID"] = t.ID
	env["Currency"] = t.Currency
	env["Symbol"] = t.Symbol
	env["Name"] = t.Name
	env["Status"] = t.Status
	env["Price"] = toFloat(t.Price)
	env["PriceTimestamp"] = t.PriceTimestamp
	env["CirculatingSupply"] = toFloat(t.CirculatingSupply)
	env["MaxSupply"] = toFloat(t.MaxSupply)
	env["MarketCap"] = toFloat(t.MarketCap)
	env["MarketCapDominance"] = toFloat(t.MarketCapDominance)
	env["High"] = toFloat(t.High)
	env["Rank"] = toInt(t.Rank)
	env["RankDelta"] = toInt(t.RankDelta)
	env["NumExchanges"] = toInt(t.NumExchanges)
	env["NumPairs"] = toInt(t.NumPairs)

	intervals := t.Intervals
	env["change"] = func(interval string) float64 {
		return toFloat(intervals[interval].PriceChangePct)
	}
	env["volume"] = func(interval string) float64 {
		return toFloat(intervals[interval].Volume)
	}
	env["hasInterval"] = func(interval string) bool {
		_, ok := intervals[interval]
		return ok
	}
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// toInt parses the API's stringly typed counters, 0 when absent
func toInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
