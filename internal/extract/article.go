package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Article holds the readable portion of a fetched page
type Article struct {
	Title string
	Body  string
}

// boilerplate phrases stripped from extracted article text
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)share\s+this\s+article`),
	regexp.MustCompile(`(?i)subscribe\s+to\s+our\s+newsletter`),
	regexp.MustCompile(`(?i)cookie\s+policy`),
	regexp.MustCompile(`(?i)privacy\s+policy`),
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ParseArticle extracts the title and readable body text from HTML,
// preferring semantic containers over the full page
func ParseArticle(htmlContent string) (*Article, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	title := findTitle(doc)

	// Prefer <article> or <main>; fall back to concatenated paragraphs,
	// then to all visible text
	body := ""
	if container := findElement(doc, "article"); container != nil {
		body = visibleText(container)
	} else if container := findElement(doc, "main"); container != nil {
		body = visibleText(container)
	} else if paragraphs := collectParagraphs(doc); paragraphs != "" {
		body = paragraphs
	} else {
		body = visibleText(doc)
	}

	return &Article{
		Title: title,
		Body:  cleanText(body),
	}, nil
}

// visibleText extracts text nodes, skipping scripts, styles, and chrome
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "nav", "footer", "aside", "header", "form":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

func findTitle(doc *html.Node) string {
	node := findElement(doc, "title")
	if node == nil || node.FirstChild == nil {
		return ""
	}
	return strings.TrimSpace(node.FirstChild.Data)
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func collectParagraphs(doc *html.Node) string {
	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			if text := strings.TrimSpace(visibleText(n)); text != "" {
				parts = append(parts, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.Join(parts, " ")
}

func cleanText(text string) string {
	for _, re := range noisePatterns {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
