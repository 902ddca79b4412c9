package site

// pageTemplate is the html/template shell around every guide page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" class="{{.RootClass}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="theme-color" content="{{.ThemeColor}}">
  <title>{{.Title}} | {{.SiteTitle}}</title>
  <link rel="stylesheet" href="/assets/style.css">
</head>
<body data-theme="{{.Theme}}" data-nav="{{.NavID}}"{{if .Static}} data-static{{end}}{{if .ScrollTop}} data-scroll-top{{end}}>
  {{.Nav}}
  <main class="content" id="content">
    <article class="page-content">
    {{- if .NotFound}}
      <h1>Page not found</h1>
      <p>There is no page at <code>{{.Path}}</code>. Pick a topic from the menu or go back <a href="/?via=nav">home</a>.</p>
    {{- else}}
      {{.Content}}
    {{- end}}
    </article>
  </main>
  <script src="/assets/app.js"></script>
</body>
</html>`

// cssContent styles the navigation bar, both themes and the page body.
const cssContent = `:root {
  --nav-bg: #20232a;
  --nav-fg: #ffffff;
  --accent: #61dafb;
  --dropdown-bg: #282c34;
}
html.dark-mode {
  --bg: #171a1f;
  --fg: #e6e6e6;
  --muted: #9aa4b2;
  --card: #1f232a;
  --border: #2f3540;
  --code-bg: #282a36;
}
html.light-mode {
  --bg: #f6f7f9;
  --fg: #1c1e21;
  --muted: #5f6b7a;
  --card: #ffffff;
  --border: #dde1e6;
  --code-bg: #282a36;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--fg);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
  transition: background 0.2s, color 0.2s;
}
a { color: var(--accent); }

.navbar {
  position: sticky;
  top: 0;
  z-index: 100;
  background: var(--nav-bg);
  color: var(--nav-fg);
  box-shadow: 0 2px 6px rgba(0, 0, 0, 0.3);
}
.navbar-container {
  display: flex;
  align-items: center;
  max-width: 1200px;
  height: 64px;
  margin: 0 auto;
  padding: 0 20px;
  gap: 12px;
}
.navbar-logo {
  color: var(--accent);
  font-size: 1.4rem;
  font-weight: 700;
  text-decoration: none;
  margin-right: auto;
}
.nav-menu {
  display: flex;
  list-style: none;
  margin: 0;
  padding: 0;
  gap: 4px;
}
.nav-item { position: relative; }
.nav-form { display: inline; margin: 0; }
.nav-link {
  display: block;
  padding: 8px 12px;
  color: var(--nav-fg);
  background: none;
  border: 0;
  border-radius: 4px;
  font: inherit;
  text-decoration: none;
  cursor: pointer;
}
.nav-link:hover, .nav-link.active { color: var(--accent); }
.dropdown-icon { font-size: 0.7em; }
.dropdown-content {
  display: none;
  position: absolute;
  top: 100%;
  left: 0;
  min-width: 220px;
  padding: 6px 0;
  background: var(--dropdown-bg);
  border-radius: 4px;
  box-shadow: 0 8px 16px rgba(0, 0, 0, 0.35);
}
.dropdown.open .dropdown-content { display: block; }
.dropdown-link {
  display: block;
  padding: 8px 16px;
  color: var(--nav-fg);
  text-decoration: none;
}
.dropdown-link:hover, .dropdown-link.active { color: var(--accent); background: rgba(97, 218, 251, 0.08); }

.theme-toggle {
  background: none;
  border: 1px solid rgba(255, 255, 255, 0.2);
  border-radius: 50%;
  width: 36px;
  height: 36px;
  color: var(--nav-fg);
  cursor: pointer;
}
html.dark-mode .sun-icon, html.light-mode .moon-icon { display: none; }

.menu-icon {
  display: none;
  flex-direction: column;
  gap: 5px;
  background: none;
  border: 0;
  padding: 6px;
  cursor: pointer;
}
.menu-icon .bar {
  width: 24px;
  height: 3px;
  background: var(--nav-fg);
  transition: transform 0.2s, opacity 0.2s;
}
.menu-icon.open .bar:nth-child(1) { transform: translateY(8px) rotate(45deg); }
.menu-icon.open .bar:nth-child(2) { opacity: 0; }
.menu-icon.open .bar:nth-child(3) { transform: translateY(-8px) rotate(-45deg); }

.content {
  max-width: 960px;
  margin: 0 auto;
  padding: 32px 20px 64px;
}
.page-content h1 { margin-top: 0; }
.page-content h2 { border-bottom: 1px solid var(--border); padding-bottom: 6px; }
.page-content p, .page-content li { color: var(--fg); }
.page-content blockquote {
  margin: 16px 0;
  padding: 8px 16px;
  border-left: 4px solid var(--accent);
  background: var(--card);
  color: var(--muted);
}
.page-content pre {
  overflow-x: auto;
  padding: 16px;
  border-radius: 6px;
  background: var(--code-bg);
}
.page-content code { font-family: "Fira Code", Consolas, monospace; font-size: 0.9em; }
.page-content table { border-collapse: collapse; width: 100%; }
.page-content th, .page-content td { border: 1px solid var(--border); padding: 6px 10px; text-align: left; }

@media (max-width: 960px) {
  .menu-icon { display: flex; }
  .nav-menu {
    display: none;
    position: absolute;
    top: 64px;
    left: 0;
    right: 0;
    flex-direction: column;
    padding: 12px 20px;
    background: var(--nav-bg);
  }
  .nav-menu.active { display: flex; }
  .dropdown-content { position: static; box-shadow: none; }
}
`

// jsContent reports interactions to the visitor's session and applies the
// state it answers with. Static exports keep the same state in the page.
const jsContent = `(function () {
  var root = document.documentElement;
  var body = document.body;
  var navId = body.getAttribute('data-nav') || 'site-nav';
  var nav = document.getElementById(navId);
  var isStatic = body.hasAttribute('data-static');
  var dark = window.matchMedia ? window.matchMedia('(prefers-color-scheme: dark)') : null;
  var socket = null;
  var state = { mobile_menu_open: false, open_dropdown: '' };

  function apply(next) {
    state = next;
    root.classList.remove('light-mode', 'dark-mode');
    root.classList.add(next.theme_class);
    var meta = document.querySelector('meta[name="theme-color"]');
    if (meta) meta.setAttribute('content', next.theme_color);
    if (nav) {
      nav.classList.toggle('menu-open', next.mobile_menu_open);
      var menu = document.getElementById('nav-menu');
      if (menu) menu.classList.toggle('active', next.mobile_menu_open);
      var icon = nav.querySelector('[data-toggle-menu]');
      if (icon) icon.classList.toggle('open', next.mobile_menu_open);
      nav.querySelectorAll('[data-dropdown]').forEach(function (el) {
        el.classList.toggle('open', el.getAttribute('data-dropdown') === next.open_dropdown);
      });
    }
    if (next.scroll_top) window.scrollTo({ top: 0, behavior: 'smooth' });
  }

  // Static pages: the same rules, held in the page.
  var colors = { light: '#f6f7f9', dark: '#171a1f' };
  function stored() {
    try {
      var v = localStorage.getItem('theme');
      return v === 'light' || v === 'dark' ? v : null;
    } catch (e) { return null; }
  }
  function withTheme(s, t) {
    s.theme = t;
    s.theme_class = t + '-mode';
    s.theme_color = colors[t];
    return s;
  }
  function reduce(ev) {
    var s = Object.assign({}, state, { scroll_top: false });
    switch (ev.type) {
      case 'toggle-theme':
        withTheme(s, s.theme === 'dark' ? 'light' : 'dark');
        try { localStorage.setItem('theme', s.theme); } catch (e) {}
        break;
      case 'toggle-menu':
        s.mobile_menu_open = !s.mobile_menu_open;
        s.open_dropdown = '';
        break;
      case 'toggle-dropdown':
        s.open_dropdown = s.open_dropdown === ev.id ? '' : ev.id;
        break;
      case 'hover':
        s.open_dropdown = ev.id;
        break;
      case 'leave':
        if (!s.mobile_menu_open) s.open_dropdown = '';
        break;
      case 'pointer-down':
        if (ev.target.indexOf(navId) < 0) {
          s.mobile_menu_open = false;
          s.open_dropdown = '';
        }
        break;
      case 'system-theme':
        if (!stored()) withTheme(s, ev.value);
        break;
    }
    return s;
  }

  function send(ev) {
    if (isStatic) {
      apply(reduce(ev));
      return;
    }
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(ev));
      return;
    }
    fetch('/api/events', {
      method: 'POST',
      credentials: 'same-origin',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(ev)
    }).then(function (r) { return r.ok ? r.json() : null; })
      .then(function (s) { if (s) apply(s); })
      .catch(function () {});
  }

  function connect() {
    if (!window.WebSocket) return;
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    socket = new WebSocket(proto + '//' + location.host + '/ws/events');
    socket.onmessage = function (m) {
      var msg = JSON.parse(m.data);
      if (msg.type === 'state') apply(msg.state);
    };
    socket.onopen = reportSystemTheme;
    socket.onclose = function () { socket = null; };
  }

  function reportSystemTheme() {
    if (dark) send({ type: 'system-theme', value: dark.matches ? 'dark' : 'light' });
  }

  function on(selector, handler) {
    document.querySelectorAll(selector).forEach(function (el) {
      el.addEventListener('click', function (e) {
        e.preventDefault();
        handler(el);
      });
    });
  }

  on('[data-toggle-theme]', function () { send({ type: 'toggle-theme' }); });
  on('[data-toggle-menu]', function () { send({ type: 'toggle-menu' }); });
  on('[data-toggle-dropdown]', function (el) {
    send({ type: 'toggle-dropdown', id: el.getAttribute('data-toggle-dropdown') });
  });

  var canHover = window.matchMedia && window.matchMedia('(hover: hover)').matches;
  if (canHover && nav) {
    nav.querySelectorAll('[data-dropdown]').forEach(function (el) {
      el.addEventListener('mouseenter', function () {
        send({ type: 'hover', id: el.getAttribute('data-dropdown') });
      });
      el.addEventListener('mouseleave', function () { send({ type: 'leave' }); });
    });
  }

  document.addEventListener('mousedown', function (e) {
    if (!state.mobile_menu_open && !state.open_dropdown) return;
    var ids = [];
    for (var el = e.target; el; el = el.parentElement) {
      if (el.id) ids.push(el.id);
    }
    send({ type: 'pointer-down', target: ids });
  });

  if (dark) {
    var onScheme = function () { reportSystemTheme(); };
    if (dark.addEventListener) dark.addEventListener('change', onScheme);
    else if (dark.addListener) dark.addListener(onScheme);
  }

  if (isStatic) {
    var initial = stored() || (dark ? (dark.matches ? 'dark' : 'light') : body.getAttribute('data-theme'));
    apply(withTheme({ mobile_menu_open: false, open_dropdown: '' }, initial));
  } else {
    connect();
  }
  if (body.hasAttribute('data-scroll-top')) window.scrollTo({ top: 0, behavior: 'smooth' });
})();
`
