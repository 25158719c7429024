package site

// pageTemplate is the Go html/template for every page of the site. The
// inline bootstrap in the head applies the visitor's stored preference
// before first paint; the baked data attributes on the root element are
// the build-time default it falls back to.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="theme-color" content="">
  <title>{{.Title}} — {{.SiteTitle}}</title>
  <script>window.__blogsmith = {theme: "{{.DefaultTheme}}", palette: "{{.DefaultPalette}}"};</script>
  <script>{{.Bootstrap}}</script>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <header class="site-header">
    <a class="site-title" href="{{.BasePath}}index.html">{{.SiteTitle}}</a>
    <nav class="site-nav">
      <a href="{{.BasePath}}index.html">Posts</a>
      {{if .HasProfile}}<a href="{{.BasePath}}profile.html">Profile</a>{{end}}
      <select id="palette-select" aria-label="Color palette">
        {{range .Palettes}}<option value="{{.Name}}">{{.Label}}</option>
        {{end}}</select>
      <button id="theme-btn" aria-label="Toggle theme">
        <svg class="sun" width="18" height="18" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="4"/><line x1="12" y1="20" x2="12" y2="23"/><line x1="1" y1="12" x2="4" y2="12"/><line x1="20" y1="12" x2="23" y2="12"/>
        </svg>
        <svg class="moon" width="18" height="18" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </nav>
  </header>
  <main>
{{.Content}}
  </main>
  <footer class="site-footer">
    {{if .Author}}<span>&copy; {{.Author}}</span>{{end}}
  </footer>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// listTemplate renders the post index.
const listTemplate = `<section class="post-list">
  <h1>Posts</h1>
  <ul>
    {{range .}}<li>
      <span class="post-date">{{if not .Date.IsZero}}{{.Date.Format "2006-01-02"}}{{end}}</span>
      <a href="{{.OutPath}}">{{.Title}}</a>
      {{if .Description}}<p class="post-description">{{.Description}}</p>{{end}}
    </li>
    {{end}}</ul>
</section>`

// errorContent is the body of the static error page the profile page
// redirects to when its data cannot be fetched.
const errorContent = `<section class="error-page">
  <h1>Something went wrong</h1>
  <p>The page data could not be loaded. <a href="index.html">Back to posts</a>.</p>
</section>`

// redirectTemplate is written in place of a page whose data failed at
// build time; it mirrors the browser-side redirect-on-failure rule.
const redirectTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta http-equiv="refresh" content="0; url=%s">
</head>
<body></body>
</html>`

// bootstrapJS runs inline before first paint: it resolves the stored
// preference (storage, then the injected site default, then the OS
// scheme), stamps it on the root element, publishes the global theme
// snapshot the main script adopts, and restores the chrome color
// carried over from the previous page.
const bootstrapJS = `(function() {
  var t = null, p = null, c = null;
  try {
    t = localStorage.getItem("theme");
    p = localStorage.getItem("palette");
    c = sessionStorage.getItem("theme-color");
  } catch (e) {}
  var injected = window.__blogsmith || {};
  if (t !== "light" && t !== "dark") {
    if (injected.theme === "light" || injected.theme === "dark") {
      t = injected.theme;
    } else {
      t = (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) ? "dark" : "light";
    }
  }
  if (!p) p = injected.palette || "slate";
  var root = document.documentElement;
  root.setAttribute("data-theme", t);
  root.setAttribute("data-palette", p);
  window.theme = { value: t, palette: p };
  if (c) {
    var meta = document.querySelector('meta[name="theme-color"]');
    if (meta) meta.setAttribute("content", c);
  }
})();`

// jsContent is the site runtime: preference store and controls binder,
// OS scheme adoption, chrome-color carry-forward, and the code block
// collapse toggle.
const jsContent = `(function() {
  "use strict";

  var root = document.documentElement;
  var injected = window.__blogsmith || {};

  function storedItem(key) {
    try { return localStorage.getItem(key); } catch (e) { return null; }
  }

  function systemDark() {
    return window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches;
  }

  function preferredTheme() {
    var s = storedItem("theme");
    if (s === "light" || s === "dark") return s;
    if (injected.theme === "light" || injected.theme === "dark") return injected.theme;
    return systemDark() ? "dark" : "light";
  }

  function preferredPalette() {
    return storedItem("palette") || injected.palette || "slate";
  }

  // Adopt the snapshot the inline bootstrap published rather than
  // recomputing over it; create the global object if it is missing.
  var theme = window.theme || {};
  if (theme.value !== "light" && theme.value !== "dark") theme.value = preferredTheme();
  if (!theme.palette) theme.palette = preferredPalette();
  theme.setTheme = function(v) { theme.value = v; setPreference(); };
  theme.setPalette = function(v) { theme.palette = v; setPreference(); };
  window.theme = theme;

  function setPreference() {
    try {
      localStorage.setItem("theme", theme.value);
      localStorage.setItem("palette", theme.palette);
    } catch (e) {}
    reflectPreference();
  }

  function reflectPreference() {
    root.setAttribute("data-theme", theme.value);
    root.setAttribute("data-palette", theme.palette);
    var btn = document.getElementById("theme-btn");
    if (btn) {
      btn.setAttribute("aria-label",
        theme.value === "dark" ? "Switch to light theme" : "Switch to dark theme");
    }
    var select = document.getElementById("palette-select");
    if (select) select.value = theme.palette;
    var meta = document.querySelector('meta[name="theme-color"]');
    if (meta && document.body) {
      meta.setAttribute("content", window.getComputedStyle(document.body).backgroundColor);
    }
  }

  // Assignment-style handlers: re-binding after a page transition
  // replaces instead of stacking.
  function bindControls() {
    var btn = document.getElementById("theme-btn");
    if (btn) {
      btn.onclick = function() {
        theme.value = theme.value === "dark" ? "light" : "dark";
        setPreference();
      };
    }
    var select = document.getElementById("palette-select");
    if (select) {
      select.onchange = function(e) {
        theme.palette = e.target.value;
        setPreference();
      };
    }
  }

  if (window.matchMedia) {
    window.matchMedia("(prefers-color-scheme: dark)").addEventListener("change", function(e) {
      theme.value = e.matches ? "dark" : "light";
      setPreference();
    });
  }

  // Carry the chrome color into the next document so navigation does
  // not flash the default color.
  window.addEventListener("pagehide", function() {
    var meta = document.querySelector('meta[name="theme-color"]');
    if (meta) {
      try { sessionStorage.setItem("theme-color", meta.getAttribute("content")); } catch (e) {}
    }
  });

  window.addEventListener("pageshow", function() {
    bindControls();
    reflectPreference();
  });

  bindControls();
  reflectPreference();

  // ===== Code block collapse =====
  document.querySelectorAll(".code-toggle").forEach(function(btn) {
    var pre = btn.previousElementSibling;
    if (!pre || !pre.classList.contains("code-collapse")) return;
    var collapsedLabel = btn.textContent;
    btn.onclick = function() {
      var expanded = pre.classList.toggle("expanded");
      btn.textContent = expanded ? "Show less" : collapsedLabel;
      btn.setAttribute("aria-expanded", expanded ? "true" : "false");
    };
  });
})();`

// livereloadJS is appended to script.js by dev builds only.
const livereloadJS = `
(function() {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/livereload");
  ws.onmessage = function(e) { if (e.data === "reload") location.reload(); };
})();`

// cssContent is the base stylesheet. Palette variable blocks are
// generated from the Go palette catalogue and appended at build time.
const cssContent = `:root {
  --surface: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --code-bg: #f1f3f5;
  --content-max-width: 720px;
}

[data-theme="dark"] {
  --surface: #1a1b26;
  --text: #c0caf5;
  --text-muted: #565f89;
  --border: #292e42;
  --code-bg: #1f2030;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--surface);
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
}

main, .site-header, .site-footer {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 0 1rem;
}

.site-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding-top: 1rem;
  padding-bottom: 1rem;
  border-bottom: 1px solid var(--border);
}

.site-title {
  font-weight: 700;
  font-size: 1.2rem;
  color: var(--text);
  text-decoration: none;
}

.site-nav { display: flex; align-items: center; gap: 0.75rem; }
.site-nav a { color: var(--text-muted); text-decoration: none; }
.site-nav a:hover { color: var(--accent); }

#theme-btn {
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--text);
  cursor: pointer;
  padding: 0.3rem 0.4rem;
}
#theme-btn .moon { display: none; }
[data-theme="dark"] #theme-btn .sun { display: none; }
[data-theme="dark"] #theme-btn .moon { display: inline; }

#palette-select {
  background: var(--surface);
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--text);
  padding: 0.25rem;
}

a { color: var(--accent); }

pre {
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 1rem;
  overflow-x: auto;
}

pre.code-collapse {
  max-height: calc(var(--preview-lines) * 1.5em + 2rem);
  overflow-y: hidden;
}
pre.code-collapse.expanded { max-height: none; }

.code-toggle {
  display: block;
  margin: 0.25rem 0 1rem;
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--accent);
  cursor: pointer;
  padding: 0.3rem 0.8rem;
}

.post-list ul { list-style: none; padding: 0; }
.post-list li { margin-bottom: 1rem; }
.post-date { color: var(--text-muted); margin-right: 0.75rem; font-variant-numeric: tabular-nums; }
.post-description { margin: 0.25rem 0 0; color: var(--text-muted); }

.row { display: flex; flex-wrap: wrap; gap: 0.75rem; margin-bottom: 0.75rem; }
.cell { flex: 1 1 0; min-width: 6rem; border: 1px solid var(--border); border-radius: 8px; padding: 0.5rem; text-align: center; }
.profile-photo { width: 96px; border-radius: 50%; }
.period { color: var(--text-muted); }
.ext-link { text-decoration: none; }

.site-footer {
  margin-top: 3rem;
  padding-top: 1rem;
  padding-bottom: 2rem;
  border-top: 1px solid var(--border);
  color: var(--text-muted);
}
`
