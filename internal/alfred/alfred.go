// Package alfred writes script filter output for Alfred-style launchers.
package alfred

import (
	"encoding/json"
	"io"
)

const subtitleCopy = "按回车复制翻译结果"

type Icon struct {
	Path string `json:"path"`
}

type Item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg"`
	Icon     *Icon  `json:"icon,omitempty"`
}

type Response struct {
	Items []Item `json:"items"`
}

// Empty is the response for a blank query.
func Empty() Response {
	return Response{Items: []Item{}}
}

// Translation is a single item carrying translated text as title and arg.
func Translation(text, iconPath string) Response {
	return Response{Items: []Item{newItem(text, subtitleCopy, text, iconPath)}}
}

// Failure reports err as a single item so the launcher still shows something.
func Failure(err error, iconPath string) Response {
	msg := "Error: " + err.Error()
	return Response{Items: []Item{newItem(msg, "翻译失败", msg, iconPath)}}
}

// List builds one item per entry, numbered in the subtitle.
func List(entries []string, subtitle func(i int) string, iconPath string) Response {
	resp := Empty()
	for i, e := range entries {
		resp.Items = append(resp.Items, newItem(e, subtitle(i), e, iconPath))
	}
	return resp
}

func newItem(title, subtitle, arg, iconPath string) Item {
	item := Item{Title: title, Subtitle: subtitle, Arg: arg}
	if iconPath != "" {
		item.Icon = &Icon{Path: iconPath}
	}
	return item
}

// Write encodes resp as one JSON line. Markup and non-ASCII text are
// written as is.
func Write(w io.Writer, resp Response) error {
	if resp.Items == nil {
		resp.Items = []Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}
