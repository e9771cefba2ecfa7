package site

// Assets are the static files written into the output tree. They are plain
// data so callers can swap in their own styling without touching the
// generator.
type Assets struct {
	CSS        string
	JS         string
	SearchPage string
}

// DefaultAssets returns the built-in styling, client script and search page.
func DefaultAssets() Assets {
	return Assets{CSS: defaultCSS, JS: defaultJS, SearchPage: defaultSearchPage}
}

const defaultCSS = `/* Basic styling for the archive */
body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
    line-height: 1.6;
    color: #333;
    max-width: 1000px;
    margin: 0 auto;
    padding: 20px;
    background-color: #f5f8fa;
}

.thread-title {
    color: #24292e;
    margin-bottom: 8px;
}

.thread-meta {
    color: #6a737d;
    font-size: 0.9em;
    margin-bottom: 20px;
    padding-bottom: 10px;
    border-bottom: 1px solid #e1e4e8;
}

.thread-messages {
    background-color: #fff;
    border: 1px solid #e1e4e8;
    border-radius: 6px;
    overflow: hidden;
}

.message {
    padding: 20px;
    border-bottom: 1px solid #eaecef;
}

.message:last-child {
    border-bottom: none;
}

.message.first-message {
    background-color: #f8f9fa;
    border-left: 3px solid #0366d6;
}

.message.reply-message {
    margin-left: 30px;
    border-left: 2px solid #e1e4e8;
}

.message-header {
    margin-bottom: 12px;
}

.message-subject {
    margin: 0 0 4px;
}

.message-meta {
    color: #6a737d;
    font-size: 0.85em;
}

.message-content {
    overflow-wrap: break-word;
}

.plaintext-content {
    white-space: normal;
    font-family: inherit;
}

.thread-preview {
    background-color: #fff;
    border: 1px solid #e1e4e8;
    border-radius: 6px;
    padding: 16px;
    margin-bottom: 12px;
}

.thread-preview h3 {
    margin: 0 0 6px;
}

.message-snippet {
    color: #586069;
    font-size: 0.9em;
}

.search-container {
    margin: 12px 0;
}

.search-form input {
    padding: 6px 10px;
    border: 1px solid #d1d5da;
    border-radius: 4px;
    width: 260px;
}

.pagination-controls {
    margin: 20px 0;
}

.page-link {
    display: inline-block;
    padding: 4px 10px;
    margin-right: 4px;
    border: 1px solid #d1d5da;
    border-radius: 4px;
    text-decoration: none;
}

.page-link.current {
    background-color: #0366d6;
    color: #fff;
    border-color: #0366d6;
}

.page-link.disabled {
    color: #959da5;
}
`

const defaultJS = `// Collapse long quoted sections inside messages.
document.addEventListener('DOMContentLoaded', function () {
    document.querySelectorAll('.message-content blockquote').forEach(function (quote) {
        if (quote.textContent.length < 400) return;
        quote.classList.add('collapsed');
        quote.style.maxHeight = '6em';
        quote.style.overflow = 'hidden';
        quote.style.cursor = 'pointer';
        quote.title = 'Click to expand quoted text';
        quote.addEventListener('click', function () {
            quote.style.maxHeight = quote.style.maxHeight ? '' : '6em';
        });
    });

    // Send index page searches to the search page.
    var form = document.querySelector('.search-form');
    if (form) {
        form.addEventListener('submit', function (e) {
            e.preventDefault();
            var q = document.getElementById('search-input').value;
            window.location.href = form.getAttribute('action') + '?q=' + encodeURIComponent(q);
        });
    }
});
`

const defaultSearchPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Search - Group Archive</title>
<link rel="stylesheet" href="../static/style.css">
</head>
<body>
<header>
<h1>Search the archive</h1>
<nav><a href="../index.html">Back to Index</a></nav>
</header>
<main>
<div class="search-container">
<form class="search-form" onsubmit="return false">
<input type="text" id="search-input" placeholder="Search threads..." autofocus>
</form>
</div>
<div id="search-results"></div>
</main>
<script>
(function () {
    var index = [];
    fetch('search_index.json')
        .then(function (r) { return r.json(); })
        .then(function (data) {
            index = data;
            var q = new URLSearchParams(window.location.search).get('q');
            if (q) {
                document.getElementById('search-input').value = q;
                render(q);
            }
        });

    function render(q) {
        var results = document.getElementById('search-results');
        results.innerHTML = '';
        var needle = q.trim().toLowerCase();
        if (!needle) return;
        index.filter(function (t) {
            return t.title.toLowerCase().indexOf(needle) !== -1 ||
                t.authors.some(function (a) { return a.toLowerCase().indexOf(needle) !== -1; });
        }).forEach(function (t) {
            var div = document.createElement('div');
            div.className = 'thread-preview';
            var h3 = document.createElement('h3');
            var a = document.createElement('a');
            a.href = t.url;
            a.textContent = t.title;
            h3.appendChild(a);
            var meta = document.createElement('div');
            meta.className = 'thread-meta';
            meta.textContent = t.messageCount + ' messages | ' + t.authors.join(', ');
            div.appendChild(h3);
            div.appendChild(meta);
            results.appendChild(div);
        });
    }

    document.getElementById('search-input').addEventListener('input', function (e) {
        render(e.target.value);
    });
})();
</script>
</body>
</html>
`
