package parser

import (
	"strings"

	"github.com/yaklabco/mdedit/pkg/ast"
	"github.com/yaklabco/mdedit/pkg/span"
)

// nextBlock consumes one block at st.pos. First match wins; the paragraph
// production at the end always succeeds, so progress is guaranteed.
func (st *state) nextBlock() ast.Block {
	if st.pos == 0 && st.exts.Enabled(ExtFrontMatter) {
		if b, ok := st.tryFrontMatter(); ok {
			return b
		}
	}
	if b, ok := st.tryATXHeading(); ok {
		return b
	}
	if b, ok := st.trySetextHeading(); ok {
		return b
	}
	if b, ok := st.tryThematicBreak(); ok {
		return b
	}
	if b, ok := st.tryTable(); ok {
		return b
	}
	if b, ok := st.tryFencedCode(); ok {
		return b
	}
	if st.exts.Enabled(ExtMath) {
		if b, ok := st.tryMathBlock(); ok {
			return b
		}
	}
	if st.exts.Enabled(ExtFootnotes) {
		if b, ok := st.tryFootnoteDefinition(); ok {
			return b
		}
	}
	if st.exts.Enabled(ExtTableOfContents) {
		if b, ok := st.tryTableOfContents(); ok {
			return b
		}
	}
	if b, ok := st.tryBlockquote(); ok {
		return b
	}
	if b, ok := st.tryListItem(); ok {
		return b
	}
	if b, ok := st.tryBlankLine(); ok {
		return b
	}
	return st.parseParagraph()
}

// tryFrontMatter parses YAML front matter: a "---" line, content lines,
// and a closing "---" line. Only attempted at offset 0.
func (st *state) tryFrontMatter() (ast.Block, bool) {
	if st.line(st.pos) != "---" {
		return nil, false
	}

	bodyStart := st.lineStop(st.pos)
	pos := bodyStart
	for pos < len(st.src) {
		if st.line(pos) == "---" {
			stop := st.lineStop(pos)
			node := &ast.YamlFrontMatter{
				Source:    span.New(st.src, st.pos, stop),
				Content:   st.src[bodyStart:pos],
				BodyStart: bodyStart,
				BodyStop:  pos,
			}
			st.pos = stop
			return node, true
		}
		pos = st.lineStop(pos)
	}

	// No closing fence: not front matter.
	return nil, false
}

// tryATXHeading parses "# " through "###### " headings. Seven or more
// hashes, or a missing space, is not a heading.
func (st *state) tryATXHeading() (ast.Block, bool) {
	start := st.pos
	end := st.lineEnd(start)

	i := start
	for i < end && st.src[i] == '#' {
		i++
	}
	level := i - start
	if level < 1 || level > 6 || i >= end || st.src[i] != ' ' {
		return nil, false
	}

	stop := end + st.terminatorLen(end)
	node := &ast.Heading{
		Source:  span.New(st.src, start, stop),
		Level:   level,
		Content: st.parseInlines(i+1, end, 0),
	}
	st.pos = stop
	return node, true
}

// trySetextHeading parses a content line underlined by a run of '='
// (level 1) or '-' (level 2). A line that is itself a thematic break
// cannot become setext content.
func (st *state) trySetextHeading() (ast.Block, bool) {
	start := st.pos
	end := st.lineEnd(start)
	if end == start || isThematicBreakText(st.src[start:end]) {
		return nil, false
	}

	termLen := st.terminatorLen(end)
	if termLen == 0 {
		return nil, false // last line, nothing below it
	}
	ulStart := end + termLen
	ulEnd := st.lineEnd(ulStart)
	level := setextLevel(st.src[ulStart:ulEnd])
	if level == 0 {
		return nil, false
	}

	stop := st.lineStop(ulStart)
	node := &ast.SetextHeading{
		Source:      span.New(st.src, start, stop),
		Level:       level,
		Underline:   st.src[ulStart:ulEnd],
		ContentStop: end,
		Content:     st.parseInlines(start, end, 0),
	}
	st.pos = stop
	return node, true
}

// setextLevel classifies an underline line: 1 for '=', 2 for '-', 0 if
// the line is not a valid underline. Trailing whitespace is allowed.
func setextLevel(line string) int {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" {
		return 0
	}
	ch := trimmed[0]
	if ch != '=' && ch != '-' {
		return 0
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != ch {
			return 0
		}
	}
	if ch == '=' {
		return 1
	}
	return 2
}

// tryThematicBreak parses a line of three or more '-', '*' or '_'
// characters with optional trailing whitespace.
func (st *state) tryThematicBreak() (ast.Block, bool) {
	start := st.pos
	end := st.lineEnd(start)
	line := st.src[start:end]
	if !isThematicBreakText(line) {
		return nil, false
	}

	stop := end + st.terminatorLen(end)
	node := &ast.ThematicBreak{
		Source: span.New(st.src, start, stop),
		Marker: line,
	}
	st.pos = stop
	return node, true
}

// isThematicBreakText reports whether a line is a run of 3+ identical
// break markers followed only by whitespace.
func isThematicBreakText(line string) bool {
	if line == "" {
		return false
	}
	marker := line[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	count := 0
	for count < len(line) && line[count] == marker {
		count++
	}
	if count < 3 {
		return false
	}
	for i := count; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return false
		}
	}
	return true
}

// tryTable parses a pipe table: a header row, a delimiter row with one
// alignment cell per header column, then greedy pipe-delimited body rows.
func (st *state) tryTable() (ast.Block, bool) {
	start := st.pos
	headerEnd := st.lineEnd(start)
	headerLine := st.src[start:headerEnd]
	if !strings.Contains(headerLine, "|") {
		return nil, false
	}

	delimStart := headerEnd + st.terminatorLen(headerEnd)
	if delimStart >= len(st.src) || delimStart == headerEnd {
		return nil, false
	}
	delimLine := st.line(delimStart)
	aligns, ok := parseDelimiterRow(delimLine)
	if !ok {
		return nil, false
	}

	header := splitCells(headerLine)
	if len(header) == 0 || len(header) != len(aligns) {
		return nil, false
	}

	delimStop := st.lineStop(delimStart)
	pos := delimStop
	var rows [][]string
	for pos < len(st.src) {
		line := st.line(pos)
		if !strings.Contains(line, "|") {
			break
		}
		rows = append(rows, splitCells(line))
		pos = st.lineStop(pos)
	}

	node := &ast.Table{
		Source:     span.New(st.src, start, pos),
		Header:     header,
		Alignments: aligns,
		Rows:       rows,
		DelimStart: delimStart,
		DelimStop:  delimStop,
	}
	st.pos = pos
	return node, true
}

// splitCells splits a table row on '|', dropping the empty outer
// segments produced by leading/trailing pipes, and trims each cell.
func splitCells(line string) []string {
	segs := strings.Split(line, "|")
	if len(segs) > 0 && strings.HasPrefix(line, "|") {
		segs = segs[1:]
	}
	if len(segs) > 0 && strings.HasSuffix(line, "|") {
		segs = segs[:len(segs)-1]
	}
	cells := make([]string, len(segs))
	for i, s := range segs {
		cells[i] = strings.TrimSpace(s)
	}
	return cells
}

// parseDelimiterRow validates a table delimiter row and computes the
// per-column alignments. Cells must match :?-{3,}:?.
func parseDelimiterRow(line string) ([]ast.Alignment, bool) {
	if !strings.Contains(line, "|") {
		return nil, false
	}
	cells := splitCells(line)
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]ast.Alignment, len(cells))
	for i, cell := range cells {
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":") && len(cell) > 1
		dashes := strings.TrimSuffix(strings.TrimPrefix(cell, ":"), ":")
		if len(dashes) < 3 || strings.Count(dashes, "-") != len(dashes) {
			return nil, false
		}
		switch {
		case left && right:
			aligns[i] = ast.AlignCenter
		case left:
			aligns[i] = ast.AlignLeft
		case right:
			aligns[i] = ast.AlignRight
		default:
			aligns[i] = ast.AlignNone
		}
	}
	return aligns, true
}

// tryFencedCode parses a fenced code block opened by 3+ backticks or
// tildes. The body is verbatim until a matching-or-longer closing fence
// of the same character, or end of input.
func (st *state) tryFencedCode() (ast.Block, bool) {
	start := st.pos
	end := st.lineEnd(start)
	if start >= end {
		return nil, false
	}
	fenceChar := st.src[start]
	if fenceChar != '`' && fenceChar != '~' {
		return nil, false
	}

	i := start
	for i < end && st.src[i] == fenceChar {
		i++
	}
	fenceLen := i - start
	if fenceLen < 3 {
		return nil, false
	}

	info := strings.TrimSpace(st.src[i:end])
	language := ""
	if fields := strings.Fields(info); len(fields) > 0 {
		language = fields[0]
	}

	bodyStart := st.lineStop(start)
	pos := bodyStart
	bodyStop := len(st.src)
	stop := len(st.src)
	closed := false
	for pos < len(st.src) {
		if isClosingFence(st.line(pos), fenceChar, fenceLen) {
			bodyStop = pos
			stop = st.lineStop(pos)
			closed = true
			break
		}
		pos = st.lineStop(pos)
	}

	node := &ast.FencedCode{
		Source:    span.New(st.src, start, stop),
		Fence:     st.src[start : start+fenceLen],
		Language:  language,
		Body:      st.src[bodyStart:bodyStop],
		BodyStart: bodyStart,
		BodyStop:  bodyStop,
		Closed:    closed,
	}
	st.pos = stop
	return node, true
}

// isClosingFence reports whether a line closes a fence of the given
// character and minimum length. Trailing whitespace is allowed.
func isClosingFence(line string, fenceChar byte, minLen int) bool {
	count := 0
	for count < len(line) && line[count] == fenceChar {
		count++
	}
	if count < minLen {
		return false
	}
	return strings.TrimRight(line[count:], " \t") == ""
}

// tryMathBlock parses a "$$" line, content lines, and a closing "$$"
// line (or end of input).
func (st *state) tryMathBlock() (ast.Block, bool) {
	start := st.pos
	if strings.TrimRight(st.line(start), " \t") != "$$" {
		return nil, false
	}

	bodyStart := st.lineStop(start)
	pos := bodyStart
	bodyStop := len(st.src)
	stop := len(st.src)
	closed := false
	for pos < len(st.src) {
		if strings.TrimRight(st.line(pos), " \t") == "$$" {
			bodyStop = pos
			stop = st.lineStop(pos)
			closed = true
			break
		}
		pos = st.lineStop(pos)
	}

	node := &ast.MathBlock{
		Source:    span.New(st.src, start, stop),
		Expr:      st.src[bodyStart:bodyStop],
		BodyStart: bodyStart,
		BodyStop:  bodyStop,
		Closed:    closed,
	}
	st.pos = stop
	return node, true
}

// tryFootnoteDefinition parses a "[^label]:" prefix followed by inline
// content.
func (st *state) tryFootnoteDefinition() (ast.Block, bool) {
	start := st.pos
	end := st.lineEnd(start)
	if end-start < 5 || st.src[start] != '[' || st.src[start+1] != '^' {
		return nil, false
	}

	rb := -1
	for i := start + 2; i < end; i++ {
		c := st.src[i]
		if c == ']' {
			rb = i
			break
		}
		if c == ' ' || c == '\t' {
			return nil, false
		}
	}
	if rb < 0 || rb == start+2 || rb+1 >= end || st.src[rb+1] != ':' {
		return nil, false
	}

	prefixStop := rb + 2
	if prefixStop < end && st.src[prefixStop] == ' ' {
		prefixStop++
	}

	stop := end + st.terminatorLen(end)
	node := &ast.FootnoteDefinition{
		Source:    span.New(st.src, start, stop),
		Label:     st.src[start+2 : rb],
		PrefixLen: prefixStop - start,
		Content:   st.parseInlines(prefixStop, end, 0),
	}
	st.pos = stop
	return node, true
}

// tryTableOfContents parses a line containing exactly "[TOC]".
func (st *state) tryTableOfContents() (ast.Block, bool) {
	start := st.pos
	if st.line(start) != "[TOC]" {
		return nil, false
	}
	stop := st.lineStop(start)
	node := &ast.TableOfContents{Source: span.New(st.src, start, stop)}
	st.pos = stop
	return node, true
}

// tryBlockquote parses a "> " prefixed line. Exactly one space is
// required after the marker.
func (st *state) tryBlockquote() (ast.Block, bool) {
	start := st.pos
	end := st.lineEnd(start)
	if end-start < 2 || st.src[start] != '>' || st.src[start+1] != ' ' {
		return nil, false
	}

	stop := end + st.terminatorLen(end)
	node := &ast.Blockquote{
		Source:  span.New(st.src, start, stop),
		Content: st.parseInlines(start+2, end, 0),
	}
	st.pos = stop
	return node, true
}

// tryListItem parses a single unordered or ordered list item: indent,
// marker, exactly one space, an optional task checkbox, then inline
// content.
func (st *state) tryListItem() (ast.Block, bool) {
	start := st.pos
	end := st.lineEnd(start)

	i := start
	for i < end && (st.src[i] == ' ' || st.src[i] == '\t') {
		i++
	}
	indent := i - start
	if i >= end {
		return nil, false
	}

	switch c := st.src[i]; {
	case c == '-' || c == '*' || c == '+':
		if i+1 >= end || st.src[i+1] != ' ' {
			return nil, false
		}
		contentStart := i + 2
		isTask, checked, contentStart := st.scanCheckbox(contentStart, end)

		stop := end + st.terminatorLen(end)
		node := &ast.UnorderedListItem{
			Source:  span.New(st.src, start, stop),
			Marker:  c,
			Indent:  indent,
			IsTask:  isTask,
			Checked: checked,
			Content: st.parseInlines(contentStart, end, 0),
		}
		st.pos = stop
		return node, true

	case c >= '0' && c <= '9':
		j := i
		for j < end && st.src[j] >= '0' && st.src[j] <= '9' {
			j++
		}
		if j >= end || (st.src[j] != '.' && st.src[j] != ')') {
			return nil, false
		}
		delim := st.src[j]
		if j+1 >= end || st.src[j+1] != ' ' {
			return nil, false
		}
		numberText := st.src[i:j]
		number := 0
		for _, d := range numberText {
			number = number*10 + int(d-'0')
		}
		contentStart := j + 2
		isTask, checked, contentStart := st.scanCheckbox(contentStart, end)

		stop := end + st.terminatorLen(end)
		node := &ast.OrderedListItem{
			Source:     span.New(st.src, start, stop),
			Number:     number,
			NumberText: numberText,
			Delim:      delim,
			Indent:     indent,
			IsTask:     isTask,
			Checked:    checked,
			Content:    st.parseInlines(contentStart, end, 0),
		}
		st.pos = stop
		return node, true
	}

	return nil, false
}

// scanCheckbox recognizes "[ ] " or "[x] " at pos. Returns the task
// flags and the content start after any checkbox.
func (st *state) scanCheckbox(pos, end int) (isTask, checked bool, contentStart int) {
	if pos+4 > end || st.src[pos] != '[' || st.src[pos+2] != ']' || st.src[pos+3] != ' ' {
		return false, false, pos
	}
	switch st.src[pos+1] {
	case ' ':
		return true, false, pos + 4
	case 'x', 'X':
		return true, true, pos + 4
	}
	return false, false, pos
}

// tryBlankLine parses a line containing only its terminator.
func (st *state) tryBlankLine() (ast.Block, bool) {
	termLen := st.terminatorLen(st.pos)
	if termLen == 0 {
		return nil, false
	}
	node := &ast.BlankLine{Source: span.New(st.src, st.pos, st.pos+termLen)}
	st.pos += termLen
	return node, true
}

// parseParagraph is the fallback block: inline content to line end.
func (st *state) parseParagraph() ast.Block {
	start := st.pos
	end := st.lineEnd(start)
	stop := end + st.terminatorLen(end)
	node := &ast.Paragraph{
		Source:  span.New(st.src, start, stop),
		Content: st.parseInlines(start, end, 0),
	}
	st.pos = stop
	return node
}
