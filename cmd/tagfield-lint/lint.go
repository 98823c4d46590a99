package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-tagfield/pkg/config"
	"github.com/goliatone/go-tagfield/pkg/dom"
	"github.com/goliatone/go-tagfield/pkg/editor"
	"github.com/goliatone/go-tagfield/pkg/model"
	"github.com/goliatone/go-tagfield/pkg/taglist"
	"github.com/goliatone/go-tagfield/pkg/widgets"
)

func lintFile(defaults config.Defaults, path string) ([]violation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return lintHTML(defaults, path, file)
}

func lintHTML(defaults config.Defaults, name string, r io.Reader) ([]violation, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	registry := widgets.NewRegistryForClass(defaults.HostClass)
	var (
		violations []violation
		position   int
	)
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Input {
			position++
			field := dom.FieldFromNode(n)
			if registry.Matches(field, widgets.WidgetTags) {
				for _, message := range lintField(defaults, field) {
					violations = append(violations, violation{
						file:     name,
						location: hostLocation(field, position),
						message:  message,
					})
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(root)
	return violations, nil
}

func lintField(defaults config.Defaults, field model.Field) []string {
	var messages []string

	cfg, err := editor.ConfigFromAttributes(field.Attributes, defaults.Editor)
	if err != nil {
		var cfgErr *editor.ConfigError
		if errors.As(err, &cfgErr) {
			for _, issue := range cfgErr.Issues {
				messages = append(messages, issue.Error())
			}
		} else {
			messages = append(messages, err.Error())
		}
	}

	if strings.TrimSpace(field.Name) == "" {
		messages = append(messages, "host has no name attribute; its value is never submitted")
	}

	list := taglist.Parse(field.Value)
	if pieces := strings.Count(field.Value, taglist.Separator) + 1; strings.TrimSpace(field.Value) != "" && pieces != list.Len() {
		messages = append(messages, fmt.Sprintf("initial value %q contains empty or duplicate items", field.Value))
	}
	if list.Len() > cfg.MaxItems {
		messages = append(messages, fmt.Sprintf("initial value has %d items, maximum is %d", list.Len(), cfg.MaxItems))
	}
	return messages
}

func hostLocation(field model.Field, position int) string {
	switch {
	case field.ID != "":
		return "#" + field.ID
	case field.Name != "":
		return fmt.Sprintf("input[name=%q]", field.Name)
	default:
		return fmt.Sprintf("input #%d", position)
	}
}
