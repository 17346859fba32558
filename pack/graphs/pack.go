// Package graphs provides the chart tools: line, bar, scatter and pie.
//
// Each tool takes a data string and an optional title and answers with a
// JSON boolean. Arguments may be positional, ["1:2,3:4", "Title"], or an
// object, {"data": "1:2,3:4", "title": "Title"}.
package graphs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/graphs/domain/artifact"
	"github.com/felixgeelhaar/graphs/domain/chart"
	"github.com/felixgeelhaar/graphs/domain/pack"
	"github.com/felixgeelhaar/graphs/domain/tool"
)

// PackName is the name the chart tools are registered under.
const PackName = "graphs"

// TagChart marks every tool in the pack.
const TagChart = "chart"

// Plotter renders and persists one chart.
type Plotter interface {
	Plot(ctx context.Context, kind chart.Kind, data string, title ...string) (artifact.Ref, error)
}

var descriptions = map[chart.Kind]string{
	chart.KindLine:    `Draw a line chart from "x:y" pairs, e.g. "0:1,1:3,2:2". Writes graph_line.svg and opens it.`,
	chart.KindBar:     `Draw a bar chart from values, e.g. "3,5,2", or "x:y" pairs. Writes graph_bar.svg and opens it.`,
	chart.KindScatter: `Draw a scatter plot from "x:y" pairs, e.g. "1:2,3:4". Writes graph_scatter.svg and opens it.`,
	chart.KindPie:     `Draw a pie chart from non-negative values, e.g. "30,50,20". Writes graph_pie.svg and opens it.`,
}

// New creates the graphs pack backed by p.
func New(p Plotter) *pack.Pack {
	builder := pack.NewBuilder(PackName).
		WithDescription("SVG chart rendering").
		WithVersion("1.0.0")

	for _, kind := range chart.AllKinds() {
		builder = builder.AddTools(chartTool(p, kind))
	}
	return builder.Build()
}

func chartTool(p Plotter, kind chart.Kind) tool.Tool {
	return tool.NewBuilder(kind.String()).
		WithDescription(descriptions[kind]).
		WithInputSchema(inputSchema()).
		WithOutputSchema(tool.NewSchema(json.RawMessage(`{"type":"boolean"}`))).
		Idempotent().
		WritesFiles().
		OpensViewer().
		WithTags(TagChart, kind.String()).
		WithHandler(func(ctx context.Context, input json.RawMessage) (tool.Result, error) {
			start := time.Now()

			in, err := decodeArgs(input)
			if err != nil {
				return tool.FailedResult(fmt.Errorf("%w: %w", tool.ErrInvalidInput, err)), nil
			}

			ref, err := p.Plot(ctx, kind, in.data, in.titles()...)
			if err != nil {
				return tool.FailedResult(err).WithDuration(time.Since(start)), nil
			}

			return tool.BoolResult(true).
				WithArtifact(tool.ArtifactRef{Name: ref.Name, Path: ref.Path}).
				WithDuration(time.Since(start)), nil
		}).
		MustBuild()
}

func inputSchema() tool.Schema {
	return tool.ObjectSchema(map[string]json.RawMessage{
		"data":  json.RawMessage(`{"type":"string","description":"comma-separated values or x:y pairs"}`),
		"title": json.RawMessage(`{"type":"string","description":"chart title"}`),
	}, []string{"data"})
}

type chartArgs struct {
	data  string
	title *string
}

func (a chartArgs) titles() []string {
	if a.title == nil {
		return nil
	}
	return []string{*a.title}
}

var (
	errMissingData = errors.New("data argument is required")
	errDataType    = errors.New("data argument must be a string")
)

// decodeArgs accepts an argument list, an object or a bare string. Data must
// be a string; a title of any other type is ignored.
func decodeArgs(input json.RawMessage) (chartArgs, error) {
	input = bytes.TrimSpace(input)
	if len(input) == 0 {
		return chartArgs{}, errMissingData
	}

	var dataRaw, titleRaw json.RawMessage
	switch input[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(input, &list); err != nil {
			return chartArgs{}, err
		}
		if len(list) == 0 {
			return chartArgs{}, errMissingData
		}
		dataRaw = list[0]
		if len(list) > 1 {
			titleRaw = list[1]
		}
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(input, &obj); err != nil {
			return chartArgs{}, err
		}
		var ok bool
		if dataRaw, ok = obj["data"]; !ok {
			return chartArgs{}, errMissingData
		}
		titleRaw = obj["title"]
	default:
		dataRaw = input
	}

	var args chartArgs
	if isNull(dataRaw) || json.Unmarshal(dataRaw, &args.data) != nil {
		return chartArgs{}, errDataType
	}
	if titleRaw != nil {
		var title string
		if !isNull(titleRaw) && json.Unmarshal(titleRaw, &title) == nil {
			args.title = &title
		}
	}
	return args, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
