package main

import (
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nguyentantai21042004/bili-notes/internal/processor"
)

func renderSummary(result processor.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Item", "Value"})

	tw.AppendRow(table.Row{"Source", result.URL})
	tw.AppendRow(table.Row{"Video", orNone(result.VideoPath)})
	tw.AppendRow(table.Row{"Subtitles", orNone(result.SubtitlePath)})
	tw.AppendRow(table.Row{"Subtitle characters", strconv.Itoa(result.SubtitleChars)})
	tw.AppendRow(table.Row{"Notes", orNone(result.NotesPath) + fileSize(result.NotesPath)})
	if result.DOCXPath != "" {
		tw.AppendRow(table.Row{"DOCX", result.DOCXPath + fileSize(result.DOCXPath)})
	}
	tw.AppendRow(table.Row{"Elapsed", result.Duration.Round(time.Millisecond).String()})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
	})
	return tw.Render()
}

func fileSize(path string) string {
	if path == "" {
		return ""
	}
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return " (" + humanize.Bytes(uint64(info.Size())) + ")"
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
