package render

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | LYRA</title>
  <link rel="stylesheet" href="{{.AssetBase}}style.css">
</head>
<body{{if .SearchIndex}} data-search-index="{{.SearchIndex}}"{{end}}>
  <div class="layout">
    <nav class="sidebar" id="sidebar">
      <div class="sidebar-header">
        <a href="{{.HomeHref}}" class="brand">LYRA</a>
        {{if .Search}}<input type="text" id="search-input" placeholder="Search sections..." autocomplete="off">
        <div class="search-results" id="search-results"></div>{{end}}
      </div>
      <ul class="sidebar-links">
        {{range .Sidebar}}
        <li><a href="{{.Href}}" class="sidebar-link{{if .Active}} active{{end}}"{{if .Active}} aria-current="page"{{end}}>{{icon .Icon "sidebar-icon"}}<span>{{.Title}}</span></a></li>
        {{end}}
      </ul>
      <div class="sidebar-footer">
        <p>AI Cheatsheet &amp; Blueprint</p>
        <p>&copy; 2024 LYRA Industries</p>
      </div>
    </nav>
    <main class="content">
      {{.Main}}
    </main>
  </div>
  <script src="{{.AssetBase}}script.js"></script>
</body>
</html>`

const explainerTemplate = `<section class="section-view explainer" id="code-explainer">
{{.Header}}
<div class="section-body">
  <form class="explain-form" id="explain-form" method="post" action="{{.Action}}">
    <label for="code-input" class="explain-label">Your Code Snippet</label>
    <textarea id="code-input" name="code" class="code-input" rows="12" placeholder="Paste your code here..." spellcheck="false"{{if .State.IsLoading}} disabled{{end}}>{{.State.InputCode}}</textarea>
    <button type="submit" class="explain-button" id="explain-button"{{if .State.IsLoading}} disabled{{end}}>{{if .State.IsLoading}}Explaining...{{else}}Explain Code{{end}}</button>
  </form>
  <div class="explain-loading" id="explain-loading"{{if not .State.IsLoading}} hidden{{end}}>
    <div class="spinner"></div>
    <p>LYRA is analyzing the code...</p>
  </div>
  <div class="explain-error" id="explain-error" role="alert"{{if not .State.Error}} hidden{{end}}>{{.State.Error}}</div>
  <div class="explain-result" id="explain-result"{{if not .State.Explanation}} hidden{{end}}>
    <h2 class="explain-result-title">Explanation</h2>
    <div class="markdown-body" id="explain-output">{{.ExplanationHTML}}</div>
  </div>
</div>
</section>`

// StyleCSS is the stylesheet for served and exported pages.
const StyleCSS = `:root {
  --bg: #111827;
  --bg-panel: #1f2937;
  --bg-code: #0b1220;
  --border: #374151;
  --text: #e5e7eb;
  --text-muted: #9ca3af;
  --accent: #22d3ee;
  --accent-strong: #0891b2;
  --error: #f87171;
  --sidebar-width: 260px;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
}

a { color: var(--accent); }

.layout { display: flex; min-height: 100vh; }

.sidebar {
  width: var(--sidebar-width);
  flex-shrink: 0;
  background: var(--bg-panel);
  border-right: 1px solid var(--border);
  display: flex;
  flex-direction: column;
}

.sidebar-header { padding: 1.5rem 1.25rem 1rem; border-bottom: 1px solid var(--border); }
.brand { font-size: 1.5rem; font-weight: 800; letter-spacing: 0.15em; color: var(--accent); text-decoration: none; }

#search-input {
  margin-top: 1rem;
  width: 100%;
  padding: 0.5rem 0.75rem;
  border-radius: 6px;
  border: 1px solid var(--border);
  background: var(--bg);
  color: var(--text);
}
.search-results a { display: block; padding: 0.35rem 0; font-size: 0.85rem; text-decoration: none; }

.sidebar-links { list-style: none; margin: 0; padding: 1rem 0.75rem; flex: 1; }
.sidebar-link {
  display: flex;
  align-items: center;
  gap: 0.75rem;
  padding: 0.6rem 0.75rem;
  border-radius: 6px;
  color: var(--text-muted);
  text-decoration: none;
}
.sidebar-link:hover { background: rgba(255, 255, 255, 0.05); color: var(--text); }
.sidebar-link.active { background: var(--accent-strong); color: #fff; }
.sidebar-icon { width: 1.25rem; height: 1.25rem; }

.sidebar-footer { padding: 1rem 1.25rem; font-size: 0.75rem; color: var(--text-muted); border-top: 1px solid var(--border); }
.sidebar-footer p { margin: 0.15rem 0; }

.content { flex: 1; padding: 2.5rem 3rem; max-width: 960px; }

.section-header { display: flex; align-items: center; gap: 1rem; margin-bottom: 2rem; }
.section-icon { width: 2.5rem; height: 2.5rem; color: var(--accent); }
.section-title { margin: 0; font-size: 1.9rem; }
.section-tagline { margin: 0.25rem 0 0; color: var(--text-muted); }

.node-heading { font-size: 1.5rem; margin: 2rem 0 1rem; }
.node-subheading { font-size: 1.15rem; margin: 1.5rem 0 0.75rem; color: var(--accent); }
.node-note {
  border-left: 4px solid var(--accent);
  background: rgba(34, 211, 238, 0.08);
  padding: 0.75rem 1rem;
  border-radius: 4px;
  margin: 1rem 0;
}
.node-separator { border: 0; border-top: 1px solid var(--border); margin: 2rem 0; }
.node-list li { margin: 0.35rem 0; }

code { font-family: "JetBrains Mono", Menlo, Consolas, monospace; font-size: 0.9em; }
p code, li code, .node-note code { background: var(--bg-code); padding: 0.1rem 0.35rem; border-radius: 4px; }

.code-block { margin: 1rem 0 1.5rem; border: 1px solid var(--border); border-radius: 8px; overflow: hidden; }
.code-block-header {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 0.4rem 0.75rem;
  background: var(--bg-panel);
}
.code-block pre { margin: 0; padding: 1rem; overflow-x: auto; background: var(--bg-code); }

.badge { font-size: 0.7rem; font-weight: 700; padding: 0.15rem 0.5rem; border-radius: 4px; color: #fff; text-transform: uppercase; }
.badge-python { background: #1e40af; }
.badge-javascript { background: #ca8a04; }
.badge-json { background: #15803d; }
.badge-shell { background: #374151; }
.badge-html { background: #ea580c; }
.badge-default { background: #4b5563; }

.copy-button {
  margin-left: auto;
  border: 1px solid var(--border);
  background: transparent;
  color: var(--text-muted);
  border-radius: 4px;
  padding: 0.2rem 0.6rem;
  cursor: pointer;
}
.copy-button.copied { color: #4ade80; border-color: #4ade80; }

.explain-form { display: flex; flex-direction: column; gap: 0.75rem; }
.explain-label { font-weight: 600; }
.code-input {
  width: 100%;
  font-family: "JetBrains Mono", Menlo, Consolas, monospace;
  background: var(--bg-code);
  color: var(--text);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 1rem;
  resize: vertical;
}
.explain-button {
  align-self: flex-start;
  padding: 0.6rem 1.5rem;
  border: 0;
  border-radius: 6px;
  background: var(--accent-strong);
  color: #fff;
  font-weight: 600;
  cursor: pointer;
}
.explain-button:disabled { opacity: 0.6; cursor: not-allowed; }

.explain-loading { display: flex; align-items: center; gap: 0.75rem; margin-top: 1.5rem; color: var(--text-muted); }
.explain-loading[hidden], .explain-error[hidden], .explain-result[hidden] { display: none; }
.spinner {
  width: 1.25rem;
  height: 1.25rem;
  border: 2px solid var(--border);
  border-top-color: var(--accent);
  border-radius: 50%;
  animation: spin 0.8s linear infinite;
}
@keyframes spin { to { transform: rotate(360deg); } }

.explain-error { margin-top: 1.5rem; padding: 0.75rem 1rem; border: 1px solid var(--error); color: var(--error); border-radius: 6px; }
.explain-result { margin-top: 2rem; padding: 1.5rem; background: var(--bg-panel); border-radius: 8px; }
.explain-result-title { margin-top: 0; }
.markdown-body pre { background: var(--bg-code); padding: 1rem; border-radius: 6px; overflow-x: auto; }

@media (max-width: 768px) {
  .layout { flex-direction: column; }
  .sidebar { width: 100%; }
  .content { padding: 1.5rem; }
}
`

// ScriptJS drives the copy buttons, the explainer websocket and search.
const ScriptJS = `(function() {
  'use strict';

  var CONFIRM_MS = 2000;

  function initCopyButtons(root) {
    root.querySelectorAll('.copy-button').forEach(function(btn) {
      btn.addEventListener('click', function() {
        navigator.clipboard.writeText(btn.getAttribute('data-code')).then(function() {
          btn.textContent = 'Copied!';
          btn.classList.add('copied');
          clearTimeout(btn._revert);
          btn._revert = setTimeout(function() {
            btn.textContent = 'Copy';
            btn.classList.remove('copied');
          }, CONFIRM_MS);
        }).catch(function(err) {
          console.error('Failed to copy text: ', err);
        });
      });
    });
  }

  function applyState(state) {
    var input = document.getElementById('code-input');
    var button = document.getElementById('explain-button');
    var loading = document.getElementById('explain-loading');
    var errBox = document.getElementById('explain-error');
    var result = document.getElementById('explain-result');
    var output = document.getElementById('explain-output');

    input.disabled = state.is_loading;
    button.disabled = state.is_loading;
    button.textContent = state.is_loading ? 'Explaining...' : 'Explain Code';
    loading.hidden = !state.is_loading;

    errBox.textContent = state.error || '';
    errBox.hidden = !state.error;

    output.innerHTML = state.explanation_html || '';
    result.hidden = !state.explanation;
  }

  function initExplainer() {
    var form = document.getElementById('explain-form');
    if (!form || !window.WebSocket) return;

    form.addEventListener('submit', function(e) {
      e.preventDefault();
      var code = document.getElementById('code-input').value;
      var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
      var ws = new WebSocket(proto + location.host + '/ws/explain');
      var done = false;

      ws.onopen = function() {
        ws.send(JSON.stringify({ code: code }));
      };
      ws.onmessage = function(msg) {
        var state = JSON.parse(msg.data);
        applyState(state);
        if (!state.is_loading) {
          done = true;
          ws.close();
        }
      };
      ws.onerror = function() {
        if (!done) form.submit();
      };
    });
  }

  function initSearch() {
    var input = document.getElementById('search-input');
    var results = document.getElementById('search-results');
    if (!input || !results) return;

    var indexURL = document.body.getAttribute('data-search-index');
    var index = null;

    function query(q) {
      if (!indexURL) {
        return fetch('/api/search?q=' + encodeURIComponent(q)).then(function(resp) {
          return resp.json();
        });
      }
      var load = index ? Promise.resolve(index) : fetch(indexURL).then(function(resp) {
        return resp.json();
      }).then(function(entries) {
        index = entries || [];
        return index;
      });
      return load.then(function(entries) {
        var needle = q.toLowerCase();
        return entries.filter(function(e) {
          return (e.title + ' ' + e.content).toLowerCase().indexOf(needle) !== -1;
        });
      });
    }

    var timer;
    input.addEventListener('input', function() {
      clearTimeout(timer);
      timer = setTimeout(function() {
        var q = input.value.trim();
        results.innerHTML = '';
        if (!q) return;
        query(q).then(function(hits) {
          (hits || []).forEach(function(hit) {
            var a = document.createElement('a');
            a.href = hit.path;
            a.textContent = hit.title;
            results.appendChild(a);
          });
        }).catch(function(err) {
          console.error('Search failed: ', err);
        });
      }, 200);
    });
  }

  initCopyButtons(document);
  initExplainer();
  initSearch();
})();
`
