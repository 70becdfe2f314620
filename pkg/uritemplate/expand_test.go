package uritemplate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rfcVariables is the binding set used by the RFC 6570 section 3.2
// examples.
func rfcVariables() *Variables {
	return NewVariables().
		Set("var", "value").
		Set("hello", "Hello World!").
		Set("empty", "").
		Set("path", "/foo/bar").
		Set("x", "1024").
		Set("y", "768").
		Set("who", "fred").
		SetList("list", "red", "green", "blue").
		SetMap("keys",
			Pair{"semi", ";"},
			Pair{"dot", "."},
			Pair{"comma", ","},
		)
}

func TestExpandOperators(t *testing.T) {
	tests := []struct {
		tmpl string
		want string
	}{
		// Simple string expansion
		{"{var}", "value"},
		{"{hello}", "Hello%20World%21"},
		{"{var:3}", "val"},
		{"{var:30}", "value"},
		{"{x,hello,y}", "1024,Hello%20World%21,768"},
		{"{x,empty}", "1024,"},
		{"{x,undef}", "1024"},
		{"{list}", "red,green,blue"},
		{"{list*}", "red,green,blue"},
		{"{keys}", "semi,%3B,dot,.,comma,%2C"},
		{"{keys*}", "semi=%3B,dot=.,comma=%2C"},

		// Reserved expansion
		{"{+var}", "value"},
		{"{+hello}", "Hello%20World!"},
		{"{+path}/here", "/foo/bar/here"},
		{"{+path:6}/here", "/foo/b/here"},
		{"{+list}", "red,green,blue"},
		{"{+keys}", "semi,;,dot,.,comma,,"},

		// Fragment expansion
		{"{#var}", "#value"},
		{"{#hello}", "#Hello%20World!"},
		{"{#x,hello,y}", "#1024,Hello%20World!,768"},
		{"{#path,x}/here", "#/foo/bar,1024/here"},
		{"{#undef}", ""},

		// Label expansion
		{"X{.var}", "X.value"},
		{"X{.empty}", "X."},
		{"X{.undef}", "X"},
		{"X{.list}", "X.red,green,blue"},
		{"X{.list*}", "X.red.green.blue"},

		// Path segment expansion
		{"{/who}", "/fred"},
		{"{/who,who}", "/fred/fred"},
		{"{/var,empty}", "/value/"},
		{"{/list}", "/red,green,blue"},
		{"{/list*,path:4}", "/red/green/blue/%2Ffoo"},

		// Path-style parameters
		{"{;x,y}", ";x=1024;y=768"},
		{"{;x,y,empty}", ";x=1024;y=768;empty"},
		{"{;keys}", ";keys=semi,%3B,dot,.,comma,%2C"},
		{"{;keys*}", ";semi=%3B;dot=.;comma=%2C"},

		// Form-style query
		{"{?x,y}", "?x=1024&y=768"},
		{"{?x,y,empty}", "?x=1024&y=768&empty="},
		{"{?x,y,undef}", "?x=1024&y=768"},
		{"{?keys}", "?keys=semi,%3B,dot,.,comma,%2C"},
		{"{?keys*}", "?semi=%3B&dot=.&comma=%2C"},
		{"{?list}", "?list=red,green,blue"},
		{"{?list*}", "?list=red&list=green&list=blue"},

		// Form-style query continuation
		{"?fixed=yes{&x}", "?fixed=yes&x=1024"},
		{"{&keys*}", "&semi=%3B&dot=.&comma=%2C"},

		// Expressions producing no output contribute nothing, not even
		// the operator prefix.
		{"{?undef}", ""},
		{"{;undef,nope}", ""},
		{"{#undef,nope}", ""},
		{"{}", ""},
	}
	for _, tt := range tests {
		t.Run(tt.tmpl, func(t *testing.T) {
			tmpl, err := Compile(tt.tmpl)
			require.NoError(t, err)
			got, err := tmpl.Expand(rfcVariables())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandSimpleString(t *testing.T) {
	vars := NewVariables().
		Set("var1", "val1").
		Set("var2", "val2").
		Set("euro", "€").
		Set("slash", "/").
		Set("percent", "%E2%82%AC")

	tests := []struct {
		tmpl string
		want string
	}{
		{"prefix{var}suffix", "prefixsuffix"},
		{"prefix{var1}suffix", "prefixval1suffix"},
		{"prefix{var1,var2}suffix", "prefixval1,val2suffix"},
		// The first bound name wins when others are unset.
		{"prefix{var1,var}suffix", "prefixval1suffix"},
		{"prefix{var,var2}suffix", "prefixval2suffix"},
		{"{euro}", "%E2%82%AC"},
		{"{slash}", "%2F"},
		// Simple expansion does not trust embedded triplets: the '%' is
		// itself encoded.
		{"{percent}", "%25E2%2582%25AC"},
	}
	for _, tt := range tests {
		t.Run(tt.tmpl, func(t *testing.T) {
			got, err := MustCompile(tt.tmpl).Expand(vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandLiteralOnly(t *testing.T) {
	got, err := MustCompile("€î%E2%82%AC").Expand(nil)
	require.NoError(t, err)
	assert.Equal(t, "%E2%82%AC%C3%AE%E2%82%AC", got)
}

func TestExpandNoBindings(t *testing.T) {
	// With no bindings every expression vanishes and no expansion error
	// is possible, prefix modifiers included.
	for _, src := range []string{
		"prefix{var}suffix",
		"{a:3}/x{?b,c*}",
		"{;v:2}",
		"a{+b}c{#d}e",
	} {
		t.Run(src, func(t *testing.T) {
			tmpl := MustCompile(src)
			got, err := tmpl.Expand(NewVariables())
			require.NoError(t, err)

			want, err := tmpl.Expand(nil)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
	got, err := MustCompile("prefix{var}suffix").Expand(nil)
	require.NoError(t, err)
	assert.Equal(t, "prefixsuffix", got)
}

func TestExpandPrefixOnComposite(t *testing.T) {
	tmpl := MustCompile("{list:3}")

	_, err := tmpl.Expand(NewVariables().SetList("list", "a", "b"))
	var merr *ModifierError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "list", merr.Name)

	_, err = tmpl.Expand(NewVariables().SetMap("list", Pair{"k", "v"}))
	require.ErrorAs(t, err, &merr)

	// An empty composite is undefined and skipped before the modifier
	// check applies.
	got, err := tmpl.Expand(NewVariables().SetList("list"))
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestExpandAbortsOnModifierError(t *testing.T) {
	tmpl := MustCompile("/a{/list:2}/b")
	got, err := tmpl.Expand(NewVariables().SetList("list", "x"))
	require.Error(t, err)
	assert.Equal(t, "", got, "no partial URI on expansion error")
}

func TestExpandPrefixCountsCodePoints(t *testing.T) {
	vars := NewVariables().Set("v", "€abc")
	got, err := MustCompile("{v:2}").Expand(vars)
	require.NoError(t, err)
	assert.Equal(t, "%E2%82%ACa", got)
}

func TestExpandEncodedVarname(t *testing.T) {
	// The lookup key is the raw token; the output name is the decoded
	// form.
	vars := NewVariables().Set("%65", "x")
	got, err := MustCompile("{;%65}").Expand(vars)
	require.NoError(t, err)
	assert.Equal(t, ";e=x", got)

	// Known asymmetry kept from the reference behavior: a non-exploded
	// map renders its output name from the raw varname, so the '%' is
	// re-encoded rather than decoded.
	vars = NewVariables().SetMap("%65", Pair{"k", "v"})
	got, err = MustCompile("{;%65}").Expand(vars)
	require.NoError(t, err)
	assert.Equal(t, ";%2565=k,v", got)

	// The exploded map takes its names from the entry keys instead.
	got, err = MustCompile("{;%65*}").Expand(vars)
	require.NoError(t, err)
	assert.Equal(t, ";k=v", got)
}

func TestExpandMapOrderPreserved(t *testing.T) {
	vars := NewVariables().SetMap("m",
		Pair{"z", "26"},
		Pair{"a", "1"},
		Pair{"m", "13"},
	)
	got, err := MustCompile("{?m*}").Expand(vars)
	require.NoError(t, err)
	assert.Equal(t, "?z=26&a=1&m=13", got)

	got, err = MustCompile("{?m}").Expand(vars)
	require.NoError(t, err)
	assert.Equal(t, "?m=z,26,a,1,m,13", got)
}

func TestExpandConcurrent(t *testing.T) {
	tmpl := MustCompile("/users/{id}{?fields*}")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vars := NewVariables().
				Set("id", "42").
				SetList("fields", "name", "email")
			for j := 0; j < 100; j++ {
				got, err := tmpl.Expand(vars)
				assert.NoError(t, err)
				assert.Equal(t, "/users/42?fields=name&fields=email", got)
			}
		}()
	}
	wg.Wait()
}
