package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Index lists the phrase names with a button for each that fetches and
// shows a freshly rolled phrase.
func Index(names []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buttons strings.Builder
		for _, name := range names {
			escaped := templ.EscapeString(name)
			buttons.WriteString(`
          <button class="roll" data-phrase="` + escaped + `">` + escaped + `</button>`)
		}
		_, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>RanDnD</title>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <h1>RanDnD</h1>
        <p>Roll a spell, a reaction or something to fight.</p>
      </header>
      <section class="panel">
        <div class="buttons">`+buttons.String()+`
        </div>
        <p id="phrase" class="result"></p>
        <p id="words" class="words"></p>
      </section>
    </main>

    <script>
      const phraseEl = document.getElementById("phrase");
      const wordsEl = document.getElementById("words");

      document.querySelectorAll("button.roll").forEach((btn) => {
        btn.addEventListener("click", async () => {
          phraseEl.textContent = "Rolling...";
          wordsEl.textContent = "";
          const res = await fetch("/" + encodeURIComponent(btn.dataset.phrase));
          const data = await res.json();
          if (!res.ok) {
            phraseEl.textContent = data.error || "Failed to roll a phrase.";
            return;
          }
          phraseEl.textContent = data.phrase;
          wordsEl.textContent = data.words.join(", ");
        });
      });
    </script>
  </body>
</html>
`)
		return err
	})
}
