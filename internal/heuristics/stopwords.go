package heuristics

import "strings"

// stopWords is the fixed set of C/C++ keywords (including alternative
// tokens and common width/kernel typedefs) that are too common to be
// useful grep needles. Lookups are case-insensitive.
var stopWords = map[string]struct{}{
	"alignas": {}, "alignof": {}, "asm": {}, "auto": {}, "bool": {}, "break": {},
	"case": {}, "catch": {}, "char": {}, "char8_t": {}, "char16_t": {}, "char32_t": {},
	"class": {}, "concept": {}, "const": {}, "consteval": {}, "constexpr": {},
	"constinit": {}, "continue": {}, "co_await": {}, "co_return": {}, "co_yield": {},
	"decltype": {}, "default": {}, "delete": {}, "do": {}, "double": {},
	"dynamic_cast": {}, "else": {}, "enum": {}, "explicit": {}, "export": {},
	"extern": {}, "false": {}, "float": {}, "for": {}, "friend": {}, "goto": {},
	"if": {}, "inline": {}, "int": {}, "long": {}, "mutable": {}, "namespace": {},
	"new": {}, "noexcept": {}, "nullptr": {}, "operator": {}, "private": {},
	"protected": {}, "public": {}, "register": {}, "reinterpret_cast": {},
	"requires": {}, "return": {}, "short": {}, "signed": {}, "sizeof": {},
	"static": {}, "static_assert": {}, "static_cast": {}, "struct": {}, "switch": {},
	"template": {}, "this": {}, "thread_local": {}, "throw": {}, "true": {},
	"try": {}, "typedef": {}, "typeid": {}, "typename": {}, "union": {},
	"unsigned": {}, "using": {}, "virtual": {}, "void": {}, "volatile": {},
	"wchar_t": {}, "while": {},
	"size_t": {}, "ssize_t": {}, "intptr_t": {}, "uintptr_t": {},
	"int8_t": {}, "uint8_t": {}, "int16_t": {}, "uint16_t": {},
	"int32_t": {}, "uint32_t": {}, "int64_t": {}, "uint64_t": {},
	"u8": {}, "u16": {}, "u32": {}, "u64": {},
	"s8": {}, "s16": {}, "s32": {}, "s64": {},
}

// IsStopWord reports whether sym (case-insensitively) is a stop word, or
// is empty. extra is an additional operator-configured set (from
// internal/config) checked alongside the built-in list; it may be nil.
func IsStopWord(sym string, extra map[string]struct{}) bool {
	if sym == "" {
		return true
	}
	lower := strings.ToLower(sym)
	if _, ok := stopWords[lower]; ok {
		return true
	}
	if extra != nil {
		if _, ok := extra[lower]; ok {
			return true
		}
	}
	return false
}
