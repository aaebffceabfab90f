package glyphcli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"oss.terrastruct.com/util-go/assert"
	"oss.terrastruct.com/util-go/xmain"
	"oss.terrastruct.com/util-go/xos"

	"oss.terrastruct.com/glyphs/glyphcli"
)

const legacyDoc = `{
  "glyphs": [
    {"id": "a", "type": "rect", "x": 0, "y": 0, "inputs": 1, "outputs": 1},
    {"id": "b", "type": "rect", "x": 200, "y": 0, "inputs": 1, "outputs": 1}
  ],
  "connections": [
    {"id": "c1", "fromGlyphId": "a", "fromPortId": 1, "toGlyphId": "b", "toPortId": 0}
  ]
}`

const danglingDoc = `{
  "glyphs": [{"id": "a", "type": "rect"}],
  "connections": [{"id": "c1", "fromGlyphId": "a", "fromPortId": "output:0", "toGlyphId": "z", "toPortId": "input:0"}]
}`

func TestRun(t *testing.T) {
	t.Parallel()

	tca := []struct {
		name string
		run  func(t *testing.T, ctx context.Context, dir string, env *xos.Env)
	}{
		{
			name: "svg",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "doc.json", legacyDoc)
				err := runTestMain(t, ctx, dir, env, "doc.json")
				assert.Success(t, err)
				svg := string(readFile(t, dir, "doc.svg"))
				assert.True(t, strings.Contains(svg, `d="M 100 30 C 130 30 170 30 200 30"`))
			},
		},
		{
			name: "style_env",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "doc.json", legacyDoc)
				env.Setenv("GLYPHS_STYLE", "line")
				err := runTestMain(t, ctx, dir, env, "doc.json", "out.svg")
				assert.Success(t, err)
				svg := string(readFile(t, dir, "out.svg"))
				assert.True(t, strings.Contains(svg, `d="M 100 30 L 200 30"`))
			},
		},
		{
			name: "bad_style",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "doc.json", legacyDoc)
				err := runTestMain(t, ctx, dir, env, "--style=zigzag", "doc.json")
				assert.True(t, err != nil)
				assert.True(t, strings.Contains(err.Error(), `--style must be one of line, manhattan, bezier, got "zigzag"`))
			},
		},
		{
			name: "json",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "doc.json", legacyDoc)
				err := runTestMain(t, ctx, dir, env, "--style=manhattan", "doc.json", "layout.json")
				assert.Success(t, err)
				out := string(readFile(t, dir, "layout.json"))
				assert.True(t, strings.Contains(out, `"d": "M 100 30 L 150 30 L 150 30 L 200 30"`))
				assert.True(t, strings.Contains(out, `"pageId": "page-1"`))
			},
		},
		{
			name: "png",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "doc.json", legacyDoc)
				err := runTestMain(t, ctx, dir, env, "--scale=2", "doc.json", "doc.png")
				assert.Success(t, err)
				png := readFile(t, dir, "doc.png")
				assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
			},
		},
		{
			name: "stdin_stdout",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				stdout := &bytes.Buffer{}
				tms := testMain(dir, env, "-")
				tms.Stdin = bytes.NewBufferString(legacyDoc)
				tms.Stdout = stdout
				tms.Start(t, ctx)
				defer tms.Cleanup(t)
				err := tms.Wait(ctx)
				assert.Success(t, err)
				assert.True(t, strings.HasPrefix(stdout.String(), `<?xml version="1.0" encoding="utf-8"?>`))
			},
		},
		{
			name: "stdout_format",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "doc.json", legacyDoc)
				stdout := &bytes.Buffer{}
				tms := testMain(dir, env, "--stdout-format=png", "doc.json", "-")
				tms.Stdout = stdout
				tms.Start(t, ctx)
				defer tms.Cleanup(t)
				err := tms.Wait(ctx)
				assert.Success(t, err)
				assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte("\x89PNG")))
			},
		},
		{
			name: "missing_page",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "doc.json", legacyDoc)
				err := runTestMain(t, ctx, dir, env, "--page=nope", "doc.json")
				assert.True(t, err != nil)
				assert.True(t, strings.Contains(err.Error(), `page "nope" not found`))
			},
		},
		{
			name: "fmt",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "doc.json", legacyDoc)

				err := runTestMain(t, ctx, dir, env, "fmt", "--check", "doc.json")
				assert.True(t, err != nil)
				assert.True(t, strings.Contains(err.Error(), "found 1 unformatted file"))

				err = runTestMain(t, ctx, dir, env, "fmt", "doc.json")
				assert.Success(t, err)
				out := string(readFile(t, dir, "doc.json"))
				assert.True(t, strings.HasPrefix(out, `{`+"\n"+`  "pages": [`))
				assert.True(t, strings.Contains(out, `"fromPortId": "output:0"`))
				assert.True(t, strings.Contains(out, `"toPortId": "input:0"`))

				err = runTestMain(t, ctx, dir, env, "fmt", "--check", "doc.json")
				assert.Success(t, err)
			},
		},
		{
			name: "validate",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "ok.json", legacyDoc)
				writeFile(t, dir, "bad.json", danglingDoc)

				err := runTestMain(t, ctx, dir, env, "validate", "ok.json")
				assert.Success(t, err)

				err = runTestMain(t, ctx, dir, env, "validate", "bad.json")
				assert.True(t, err != nil)
				assert.True(t, strings.Contains(err.Error(), `page-1: connection c1: missing target glyph "z"`))
			},
		},
		{
			name: "hit",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				writeFile(t, dir, "doc.json", legacyDoc)

				stdout := &bytes.Buffer{}
				tms := testMain(dir, env, "hit", "doc.json", "20", "5")
				tms.Stdout = stdout
				tms.Start(t, ctx)
				defer tms.Cleanup(t)
				err := tms.Wait(ctx)
				assert.Success(t, err)
				assert.String(t, `{"kind":"glyph","glyphId":"a"}`+"\n", stdout.String())

				err = runTestMain(t, ctx, dir, env, "hit", "doc.json", "x", "5")
				assert.True(t, err != nil)
				assert.True(t, strings.Contains(err.Error(), `invalid x "x"`))
			},
		},
		{
			name: "stencil",
			run: func(t *testing.T, ctx context.Context, dir string, env *xos.Env) {
				stdout := &bytes.Buffer{}
				tms := testMain(dir, env, "stencil", "flowchart")
				tms.Stdout = stdout
				tms.Start(t, ctx)
				defer tms.Cleanup(t)
				err := tms.Wait(ctx)
				assert.Success(t, err)
				out := stdout.String()
				assert.True(t, strings.HasPrefix(out, "CATEGORY"))
				assert.True(t, strings.Contains(out, "flow-decision"))
				assert.True(t, !strings.Contains(out, "network-"))

				err = runTestMain(t, ctx, dir, env, "stencil", "shapes")
				assert.True(t, err != nil)
				assert.True(t, strings.Contains(err.Error(), `unknown stencil category "shapes"`))
			},
		},
	}

	ctx := context.Background()
	for _, tc := range tca {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			dir, cleanup := assert.TempDir(t)
			defer cleanup()

			env := xos.NewEnv(nil)

			tc.run(t, ctx, dir, env)
		})
	}
}

func testMain(dir string, env *xos.Env, args ...string) *xmain.TestState {
	return &xmain.TestState{
		Run:  glyphcli.Run,
		Env:  env,
		Args: append([]string{"glyphs"}, args...),
		PWD:  dir,
	}
}

func runTestMain(tb testing.TB, ctx context.Context, dir string, env *xos.Env, args ...string) error {
	tms := testMain(dir, env, args...)
	tms.Start(tb, ctx)
	defer tms.Cleanup(tb)
	return tms.Wait(ctx)
}

func writeFile(tb testing.TB, dir, fp, data string) {
	tb.Helper()
	assert.WriteFile(tb, filepath.Join(dir, fp), []byte(data), 0644)
}

func readFile(tb testing.TB, dir, fp string) []byte {
	tb.Helper()
	return assert.ReadFile(tb, filepath.Join(dir, fp))
}
