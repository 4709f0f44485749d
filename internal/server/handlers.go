package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/woozymasta/truthtable"
)

// formulaRequest is the common body of every /v1 endpoint. Formula is a
// pointer so that a missing or null value is reported as null input.
type formulaRequest struct {
	Formula *string `json:"formula"`
}

type evalRequest struct {
	formulaRequest
	Values map[string]bool `json:"values,omitempty"`
	Bits   []uint8         `json:"bits,omitempty"`
}

type tableRequest struct {
	formulaRequest
	Symbols []string `json:"symbols,omitempty"`
	Format  string   `json:"format,omitempty"`
}

type checkRequest struct {
	formulaRequest
	Symbols []string `json:"symbols,omitempty"`
}

type tokensResponse struct {
	Tokens []truthtable.Token `json:"tokens"`
}

type astResponse struct {
	AST   string   `json:"ast"`
	Infix string   `json:"infix"`
	Vars  []string `json:"vars"`
}

type evalResponse struct {
	Value bool     `json:"value"`
	Vars  []string `json:"vars"`
}

type checkResponse struct {
	Issues []truthtable.Issue `json:"issues"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// contentTypes maps non-JSON table formats to response media types.
var contentTypes = map[truthtable.Encoding]string{
	truthtable.FormatText:     echo.MIMETextPlainCharsetUTF8,
	truthtable.FormatCSV:      "text/csv; charset=UTF-8",
	truthtable.FormatMarkdown: "text/markdown; charset=UTF-8",
	truthtable.FormatYAML:     "application/yaml",
}

// health reports liveness.
func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// tokens handles POST /v1/tokens.
func (s *Server) tokens(c echo.Context) error {
	var req formulaRequest
	text, err := bindFormula(c, &req, &req)
	if err != nil {
		return s.fail(c, err)
	}

	toks, err := truthtable.Tokenize(text)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, tokensResponse{Tokens: toks})
}

// ast handles POST /v1/ast with prefix and infix renderings.
func (s *Server) ast(c echo.Context) error {
	var req formulaRequest
	text, err := bindFormula(c, &req, &req)
	if err != nil {
		return s.fail(c, err)
	}

	f, err := truthtable.ParseString(text)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, astResponse{
		AST:   truthtable.Render(f.Root),
		Infix: truthtable.Infix(f.Root),
		Vars:  f.Vars,
	})
}

// eval handles POST /v1/eval, binding by name when values is set and
// by position otherwise.
func (s *Server) eval(c echo.Context) error {
	var req evalRequest
	text, err := bindFormula(c, &req, &req.formulaRequest)
	if err != nil {
		return s.fail(c, err)
	}

	f, err := truthtable.ParseString(text)
	if err != nil {
		return s.fail(c, err)
	}

	var value bool
	if req.Values != nil {
		value, err = f.EvalMap(req.Values)
	} else {
		a := make(truthtable.Assignment, len(req.Bits))
		for i, b := range req.Bits {
			a[i] = truthtable.Bit(b)
		}
		var bit truthtable.Bit
		bit, err = f.Eval(a)
		value = bit == 1
	}
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, evalResponse{Value: value, Vars: f.Vars})
}

// truthTable handles POST /v1/table. JSON is the default format.
func (s *Server) truthTable(c echo.Context) error {
	var req tableRequest
	text, err := bindFormula(c, &req, &req.formulaRequest)
	if err != nil {
		return s.fail(c, err)
	}

	format := truthtable.FormatJSON
	if req.Format != "" {
		if format, err = truthtable.ParseFormat(req.Format); err != nil {
			return s.fail(c, err)
		}
	}

	t, err := truthtable.New(text, s.tableOptions(req.Symbols))
	if err != nil {
		return s.fail(c, err)
	}

	if format == truthtable.FormatJSON {
		return c.JSON(http.StatusOK, t.Document())
	}

	out, err := truthtable.Format(t, &truthtable.FormatOptions{Format: format})
	if err != nil {
		return s.fail(c, err)
	}

	return c.Blob(http.StatusOK, contentTypes[format], out)
}

// check handles POST /v1/check.
func (s *Server) check(c echo.Context) error {
	var req checkRequest
	text, err := bindFormula(c, &req, &req.formulaRequest)
	if err != nil {
		return s.fail(c, err)
	}

	f, err := truthtable.ParseString(text)
	if err != nil {
		return s.fail(c, err)
	}

	issues := truthtable.Check(f, nil)
	issues = append(issues, truthtable.CheckSymbols(s.tableOptions(req.Symbols))...)
	if issues == nil {
		issues = []truthtable.Issue{}
	}

	return c.JSON(http.StatusOK, checkResponse{Issues: issues})
}

// tableOptions merges request symbols over the configured defaults.
func (s *Server) tableOptions(symbols []string) *truthtable.TableOptions {
	if symbols == nil {
		symbols = []string{s.table.Truth, s.table.Falsity}
	}

	return &truthtable.TableOptions{
		Symbols:      symbols,
		MaxVariables: s.table.MaxVariables,
		Workers:      s.table.Workers,
	}
}

// errBadRequest marks undecodable request bodies.
var errBadRequest = errors.New("invalid request body")

// bindFormula decodes the body into req and returns the formula text held
// by base.
func bindFormula(c echo.Context, req any, base *formulaRequest) (string, error) {
	if err := c.Bind(req); err != nil {
		return "", errBadRequest
	}
	if base.Formula == nil {
		return "", truthtable.ErrNullInput
	}

	return *base.Formula, nil
}

// fail writes err as a JSON error. Library errors are client errors.
func (s *Server) fail(c echo.Context, err error) error {
	kind := truthtable.ErrorKind(err)
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, errBadRequest):
		kind = "request"
	case kind == "internal":
		status = http.StatusInternalServerError
		s.logger.Error("request failed", "err", err)
	}

	return c.JSON(status, errorResponse{Error: err.Error(), Kind: kind})
}
