package main

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConsole(t *testing.T) {
	l := NewLogger()
	l.SetLogger("console", nil)
	l.SetLevel(LevelInfo)

	l.Debug("debug")
	l.Info("info")
	l.Notice("notice")
	l.Warn("warn")
	l.Error("error")
}

func TestFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	l := NewLogger()
	l.SetLogger("file", map[string]interface{}{"file": logFile})
	l.SetLevel(LevelInfo)

	l.Debug("debug")
	l.Info("info")
	l.Notice("notice")
	l.Warn("warn")
	l.Error("error")

	time.Sleep(time.Second)

	f, err := os.Open(logFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	b := bufio.NewReader(f)
	linenum := 0
	for {
		line, _, err := b.ReadLine()
		if err != nil {
			break
		}
		if len(line) > 0 {
			linenum++
		}
	}

	Convey("Test Log File Handler", t, func() {
		Convey("file line nums should be 4", func() {
			So(linenum, ShouldEqual, 4)
		})
	})
}
