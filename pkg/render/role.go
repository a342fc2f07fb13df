package render

// Role is a semantic style key. The engine never hardcodes visual
// values; the host supplies a lookup table from roles to whatever its
// rendering layer styles with.
type Role string

// The full theming contract between the engine and the host.
const (
	RoleText            Role = "text"
	RoleBold            Role = "bold"
	RoleItalic          Role = "italic"
	RoleBoldItalic      Role = "bold-italic"
	RoleHeading1        Role = "heading-1"
	RoleHeading2        Role = "heading-2"
	RoleHeading3        Role = "heading-3"
	RoleHeading4        Role = "heading-4"
	RoleHeading5        Role = "heading-5"
	RoleHeading6        Role = "heading-6"
	RoleLink            Role = "link"
	RoleInlineCode      Role = "inline-code"
	RoleCodeBlock       Role = "code-block"
	RoleBlockquote      Role = "blockquote"
	RoleBlockquoteMark  Role = "blockquote-marker"
	RoleHiddenSyntax    Role = "hidden-syntax"
	RoleSyntaxDelimiter Role = "syntax-delimiter"
	RoleTaskChecked     Role = "task-checked"
	RoleTaskUnchecked   Role = "task-unchecked"
	RoleThematicBreak   Role = "thematic-break"
	RoleStrikethrough   Role = "strikethrough"
	RoleHighlight       Role = "highlight"
	RoleSubscript       Role = "subscript"
	RoleSuperscript     Role = "superscript"
	RoleMath            Role = "math"
	RoleMathBlock       Role = "math-block"
	RoleFootnoteRef     Role = "footnote-ref"
	RoleFootnoteDef     Role = "footnote-definition"
	RoleFrontMatter     Role = "front-matter"
	RoleTOC             Role = "toc"
	RoleEmoji           Role = "emoji"
	RoleTable           Role = "table"
	RoleImage           Role = "image"
	RoleEscaped         Role = "escaped"
)

// HeadingRole returns the role for a heading level, clamped to 1..6.
func HeadingRole(level int) Role {
	switch level {
	case 1:
		return RoleHeading1
	case 2:
		return RoleHeading2
	case 3:
		return RoleHeading3
	case 4:
		return RoleHeading4
	case 5:
		return RoleHeading5
	default:
		return RoleHeading6
	}
}
