package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

const emptyOutputMessage = "AI analysis failed to generate an output."

// parseResult checks raw against the {characterAnalysis, parentingTips}
// contract. Markdown fences are stripped and syntax slips such as trailing
// commas are repaired first. Truncated output is never completed: a repair
// that has to close an object, array or string is rejected.
func parseResult(raw json.RawMessage) (Result, error) {
	text := stripFences(strings.TrimSpace(string(raw)))
	if text == "" || text == "null" {
		return Result{}, newError(KindEmptyOutput, emptyOutputMessage, nil)
	}
	if !json.Valid([]byte(text)) {
		if !strings.HasSuffix(text, "}") {
			return Result{}, newError(KindMalformedOutput, "AI analysis output is truncated.", nil)
		}
		fixed, err := jsonrepair.JSONRepair(text)
		if err != nil {
			return Result{}, newError(KindMalformedOutput, "AI analysis returned invalid JSON.", err)
		}
		if closers(fixed) > closers(text) {
			return Result{}, newError(KindMalformedOutput, "AI analysis output is truncated.", nil)
		}
		text = fixed
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return Result{}, newError(KindMalformedOutput, "AI analysis output is not a JSON object.", err)
	}

	caRaw, hasCA := present(obj, fieldCharacterAnalysis)
	tipsRaw, hasTips := present(obj, fieldParentingTips)
	switch {
	case !hasCA && !hasTips:
		return Result{}, newError(KindEmptyOutput, emptyOutputMessage, nil)
	case !hasCA:
		return Result{}, malformed("%s is missing", fieldCharacterAnalysis)
	case !hasTips:
		return Result{}, malformed("%s is missing", fieldParentingTips)
	}

	var analysis string
	if err := json.Unmarshal(caRaw, &analysis); err != nil {
		return Result{}, malformed("%s must be a string", fieldCharacterAnalysis)
	}
	analysis = strings.TrimSpace(analysis)
	if analysis == "" {
		return Result{}, malformed("%s is blank", fieldCharacterAnalysis)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(tipsRaw, &items); err != nil {
		return Result{}, malformed("%s must be an array of strings", fieldParentingTips)
	}
	tips := make([]string, 0, len(items))
	for i, item := range items {
		var tip string
		if err := json.Unmarshal(item, &tip); err != nil || string(item) == "null" {
			return Result{}, malformed("%s[%d] must be a string", fieldParentingTips, i)
		}
		if tip = strings.TrimSpace(tip); tip != "" {
			tips = append(tips, tip)
		}
	}

	if len(tips) == 0 {
		return Result{}, malformed("%s has no tips", fieldParentingTips)
	}

	return Result{CharacterAnalysis: analysis, ParentingTips: tips}, nil
}

// stripFences removes a surrounding ```json ... ``` block.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = ""
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// closers counts the braces and brackets outside string contents. A repair
// that adds any of them has completed cut-off input.
func closers(text string) int {
	n := 0
	inString, escaped := false, false
	for _, r := range text {
		switch {
		case escaped:
			escaped = false
		case inString && r == '\\':
			escaped = true
		case r == '"':
			inString = !inString
		case !inString && (r == '}' || r == ']'):
			n++
		}
	}
	return n
}

// present treats explicit nulls as absent.
func present(obj map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := obj[key]
	if !ok || strings.TrimSpace(string(v)) == "null" {
		return nil, false
	}
	return v, true
}

func malformed(format string, args ...any) *Error {
	return newError(KindMalformedOutput, "AI analysis output is malformed: "+fmt.Sprintf(format, args...)+".", nil)
}
