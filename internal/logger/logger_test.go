package logger_test

import (
	"testing"

	"github.com/tslower/tslower/internal/logger"
	"github.com/tslower/tslower/internal/test"
)

func TestLocationOrNil(t *testing.T) {
	source := logger.Source{
		PrettyPath: "<stdin>",
		Contents:   "let a = 1;\nlet {b, c} = d;\r\nfoo()",
	}

	test.AssertEqual(t, logger.LocationOrNil(nil, logger.Range{}) == nil, true)

	loc := logger.LocationOrNil(&source, logger.Range{Loc: logger.Loc{Start: 16}, Len: 1})
	test.AssertEqual(t, loc.File, "<stdin>")
	test.AssertEqual(t, loc.Line, 2)
	test.AssertEqual(t, loc.Column, 5)
	test.AssertEqual(t, loc.Length, 1)
	test.AssertEqual(t, loc.LineText, "let {b, c} = d;")

	loc = logger.LocationOrNil(&source, logger.Range{Loc: logger.Loc{Start: int32(len(source.Contents) - 5)}, Len: 3})
	test.AssertEqual(t, loc.Line, 3)
	test.AssertEqual(t, loc.Column, 0)
	test.AssertEqual(t, loc.LineText, "foo()")
}

func TestMsgString(t *testing.T) {
	source := logger.Source{PrettyPath: "file.js", Contents: "x = {get a() {}, set a(v) {}}"}
	r := logger.Range{Loc: logger.Loc{Start: 17}, Len: 11}

	log := logger.NewDeferLog()
	log.AddDebug(&source, r, "Folded into the previous accessor")
	log.AddDebug(nil, logger.Range{}, "No location")
	msgs := log.Done()

	test.AssertEqual(t, len(msgs), 2)
	test.AssertEqual(t, log.HasErrors(), false)

	// Messages without a location sort first
	test.AssertEqualWithDiff(t, msgs[0].String(logger.OutputOptions{}, logger.TerminalInfo{}),
		"debug: No location\n")
	test.AssertEqualWithDiff(t, msgs[1].String(logger.OutputOptions{}, logger.TerminalInfo{}),
		"file.js:1:17: debug: Folded into the previous accessor\n")
	test.AssertEqualWithDiff(t, msgs[1].String(logger.OutputOptions{IncludeSource: true}, logger.TerminalInfo{}),
		"file.js:1:17: debug: Folded into the previous accessor\n"+
			"x = {get a() {}, set a(v) {}}\n"+
			"                 ~~~~~~~~~~~\n")

	colored := msgs[0].String(logger.OutputOptions{}, logger.TerminalInfo{UseColorEscapes: true})
	test.AssertEqual(t, colored, logger.TerminalColors.Bold+logger.TerminalColors.Blue+"debug: "+
		logger.TerminalColors.Reset+logger.TerminalColors.Bold+"No location"+logger.TerminalColors.Reset+"\n")
}

func TestDeferLogHasErrors(t *testing.T) {
	log := logger.NewDeferLog()
	log.AddMsg(logger.Msg{Kind: logger.Warning, Text: "w"})
	test.AssertEqual(t, log.HasErrors(), false)
	log.AddMsg(logger.Msg{Kind: logger.Error, Text: "e"})
	test.AssertEqual(t, log.HasErrors(), true)

	msgs := log.Done()
	test.AssertEqual(t, msgs[0].Kind, logger.Error)
	test.AssertEqual(t, msgs[1].Kind, logger.Warning)
}
