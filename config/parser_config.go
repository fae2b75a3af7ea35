package config

// ParserConfig фильтры, применяемые при разборе исходных документов
type ParserConfig struct {
	GroupMatcher    Matcher
	LessonMatcher   Matcher
	LecturerMatcher Matcher
	CampusMatcher   Matcher
}
