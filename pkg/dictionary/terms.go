package dictionary

// programmingTerms are common code-vocabulary words and abbreviations that
// show up in comments but are absent from ordinary word lists
var programmingTerms = []string{
	"var", "func", "int", "str", "bool",
	"len", "fmt", "println", "printf", "sprintf",
	"args", "argv", "argc", "param", "params",
	"init", "exec", "eval", "impl", "pkg",
	"lib", "src", "dest", "tmp", "temp",
	"dir", "dirs", "cmd", "cmds", "env",
	"config", "cfg", "ctx", "req", "res",
	"err", "stdin", "stdout", "stderr",
	"struct", "slice", "goroutine", "mutex",
	"api", "url", "uri", "http", "https", "json", "xml", "yaml",
	"html", "css", "sql", "uuid", "regex", "regexp",
	"byte", "enum", "iter", "nil",
	"auth", "login", "logout", "admin",
	"async", "await", "callback", "closure",
	"repo", "commit", "branch", "merge", "rebase",
	"todo", "fixme", "deprecated", "refactor",
	"stdlib", "middleware", "endpoint", "payload",
	"timestamp", "metadata", "namespace", "whitespace",
	"lowercase", "uppercase", "substring", "newline",
	"spellcheck", "autocorrect", "linter", "lint",
}
