package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Letter is the input for one rendered cover-letter PDF.
type Letter struct {
	Name     string // sender's full name, shown in the letterhead
	Headline string
	Blocks   []Block
}

// Block is one paragraph of the letter body. Bullet blocks render as list
// items, plain blocks as paragraphs.
type Block struct {
	Bullet bool
	HTML   template.HTML
}

// Blocks splits composed letter text into renderable paragraphs. Paragraphs
// are separated by blank lines; a paragraph starting with "• " becomes a
// bullet. The text already carries inline markup, single newlines become
// line breaks.
func Blocks(text string) []Block {
	var blocks []Block
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		bullet := strings.HasPrefix(para, "• ")
		if bullet {
			para = strings.TrimPrefix(para, "• ")
		}
		para = strings.ReplaceAll(para, "\n", "<br/>")
		blocks = append(blocks, Block{Bullet: bullet, HTML: template.HTML(para)})
	}
	return blocks
}

// letterLayout is the full-page HTML the browser prints. Kept inline so the
// generator has no runtime file dependency.
const letterLayout = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, 'Times New Roman', serif; font-size: 11.5pt; color: #1a1a1a; margin: 48px 56px; line-height: 1.5; }
  .name { font-size: 20pt; font-weight: bold; letter-spacing: 0.5px; }
  .headline { font-size: 10.5pt; color: #555; margin-bottom: 18px; border-bottom: 1.5px solid #1a1a1a; padding-bottom: 10px; }
  p { margin: 0 0 10px 0; }
  ul { margin: 0 0 10px 18px; padding: 0; }
  li { margin-bottom: 6px; }
  a { color: #0a66c2; text-decoration: none; }
</style>
</head>
<body>
  <div class="name">{{.Name}}</div>
  <div class="headline">{{.Headline}}</div>
  {{range .Blocks}}{{if .Bullet}}<ul><li>{{.HTML}}</li></ul>
  {{else}}<p>{{.HTML}}</p>
  {{end}}{{end}}
</body>
</html>`

var letterTmpl = template.Must(template.New("letter").Parse(letterLayout))

// RenderHTML executes the letter layout. Pure, so it is testable without a
// browser.
func RenderHTML(letter *Letter) (string, error) {
	var buf bytes.Buffer
	if err := letterTmpl.Execute(&buf, letter); err != nil {
		return "", fmt.Errorf("failed to execute letter template: %w", err)
	}
	return buf.String(), nil
}

// Generator converts letters into PDF bytes via a headless browser.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the letter HTML and prints it as an A4 PDF through
// Playwright.
func (g *Generator) Generate(letter *Letter) ([]byte, error) {
	htmlContent, err := RenderHTML(letter)
	if err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not launch chromium browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create new page: %w", err)
	}
	defer page.Close()

	if err := page.SetContent(htmlContent, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("could not set page content: %w", err)
	}

	pdfBytes, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("A4"),
		PrintBackground: playwright.Bool(true),
		Margin: &playwright.Margin{
			Top:    playwright.String("0"),
			Bottom: playwright.String("0"),
			Left:   playwright.String("0"),
			Right:  playwright.String("0"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate PDF: %w", err)
	}

	return pdfBytes, nil
}

// SaveToFile writes generated PDF bytes to disk, creating the directory.
func SaveToFile(pdfBytes []byte, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory: %w", err)
	}

	return os.WriteFile(outputPath, pdfBytes, 0644)
}
