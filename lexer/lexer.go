package lexer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/tebeka/snowball"
)

type Lexer struct {
	content []rune
}

type Stat struct {
	Token string
	Freq  int
}

// DefaultPunctuations is the punctuation stripped by RemovePunctuation when
// the caller passes nil
var DefaultPunctuations = []string{
	".", "?", "!", ",", ":", ";", "'", "<", ">", "(", ")",
	"{", "}", "...", "\"", "[", "]", "\\", "|",
}

// NewLexer creates a new Lexer
func NewLexer(content string) *Lexer {
	return &Lexer{[]rune(content)}
}

// TrimLeft trims empty spaces from the left of the content
func (l *Lexer) TrimLeft() {
	for len(l.content) > 0 && unicode.IsSpace(rune(l.content[0])) {
		l.content = l.content[1:]
	}
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWhile chops the content while the predicate f returns true
func (l *Lexer) ChopWhile(f func(rune) bool) (token []rune) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.Chop(n)
}

// NextToken returns the next token, words are lowercased and stemmed
func (l *Lexer) NextToken() []rune {

	l.TrimLeft()

	if len(l.content) == 0 {
		return nil
	}
	if unicode.IsNumber(l.content[0]) {
		return l.ChopWhile(unicode.IsNumber)
	}
	if unicode.IsLetter(l.content[0]) {
		stemmer, err := snowball.New("english")
		if err != nil {
			fmt.Println(err)
		}
		defer stemmer.Close()

		term := l.ChopWhile(func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsNumber(r)
		})

		return []rune(stemmer.Stem(strings.ToLower(string(term))))

	}
	return l.Chop(1)
}

// Next returns the next token as a string
func (l *Lexer) Next() (string, error) {

	token := l.NextToken()
	if token == nil {
		return "EOF", errors.New("no more tokens")
	}
	return (string(token)), nil
}

// Tokens runs the lexer over content and collects every token
func Tokens(content string) []string {
	l := NewLexer(content)
	var tokens []string
	for {
		token, err := l.Next()
		if err != nil {
			break
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Clean lexes content and joins the tokens back with single spaces, producing
// the whitespace tokenizable document string the tfidf package consumes
func Clean(content string) string {
	return strings.Join(Tokens(content), " ")
}

// RemovePunctuation strips every punctuation string from each document. A nil
// punctuations slice means DefaultPunctuations.
func RemovePunctuation(docs []string, punctuations []string) []string {
	if punctuations == nil {
		punctuations = DefaultPunctuations
	}
	processed := make([]string, 0, len(docs))
	for _, doc := range docs {
		for _, p := range punctuations {
			if strings.Contains(doc, p) {
				doc = strings.ReplaceAll(doc, p, "")
			}
		}
		processed = append(processed, doc)
	}
	return processed
}

// RemoveStopwords drops every stopword from each document and rejoins the
// remaining words with single spaces
func RemoveStopwords(stopwords []string, docs []string) []string {
	drop := make(map[string]bool, len(stopwords))
	for _, word := range stopwords {
		drop[word] = true
	}

	processed := make([]string, 0, len(docs))
	for _, doc := range docs {
		var kept []string
		for _, word := range strings.Fields(doc) {
			if !drop[word] {
				kept = append(kept, word)
			}
		}
		processed = append(processed, strings.Join(kept, " "))
	}
	return processed
}

// UniqueWords collects the vocabulary of a document set, every distinct word
// once, ordered by first occurrence so column positions are stable
func UniqueWords(docs []string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, doc := range docs {
		for _, word := range strings.Fields(doc) {
			if !seen[word] {
				seen[word] = true
				words = append(words, word)
			}
		}
	}
	return words
}

// ParseHtmlTextContent parses a html string and returns all the text content
// in the document as a single string
func ParseHtmlTextContent(htmlContent string) string {
	var content string

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return content
		case html.TextToken:
			content += string(d.Text())
		}
	}
}

// Utility function to sort a frequency map by count, highest first
func MapToSortedSlice(m map[string]int) (stats []Stat) {
	for k, v := range m {
		stats = append(stats, Stat{k, v})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Freq > stats[j].Freq })

	return stats
}
