package site

const threadPageTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} - Thread - {{.ForumName}} Archive</title>
<link rel="stylesheet" href="../static/style.css">
</head>
<body>
<header>
<h1>{{.ForumName}} - Group Archive</h1>
<nav><a href="../index.html">Back to Index</a></nav>
</header>
<main>
<h1 class="thread-title">{{.Title}}</h1>
<div class="thread-meta">{{.Count}} message{{if ne .Count 1}}s{{end}} in this thread | Started on {{.Started}}</div>
<div class="thread-messages">
{{range .Messages}}<div class="message {{if .First}}first-message{{else}}reply-message{{end}}">
<div class="message-header">
<h3 class="message-subject">{{.Subject}}</h3>
<div class="message-meta">From: <strong>{{.Sender}}</strong> | Date: {{.Date}}</div>
</div>
<div class="message-content">{{.Content}}</div>
</div>
{{end}}</div>
</main>
<footer><p>Generated by mboxsite</p></footer>
<script src="../static/script.js"></script>
</body>
</html>
`

const indexPageTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.ForumName}} Archive - Page {{.Page}}</title>
<link rel="stylesheet" href="static/style.css">
</head>
<body>
<header>
<h1>{{.ForumName}} - Group Archive</h1>
<div class="search-container">
<form action="search/" method="get" class="search-form">
<input type="text" name="q" id="search-input" placeholder="Search messages..." required>
<button type="submit" id="search-button">Search</button>
</form>
</div>
</header>
<main>
<p>Total messages: {{.TotalMessages}} in {{.TotalThreads}} threads (page {{.Page}} of {{.TotalPages}})</p>
{{range .Months}}<h2>{{.Heading}}</h2>
{{range .Threads}}<div class="thread-preview">
<h3><a href="{{.URL}}">{{.Title}}</a></h3>
<div class="thread-meta">Started by <strong>{{.StartedBy}}</strong> | {{.Count}} message{{if ne .Count 1}}s{{end}} | Last reply: {{.LastReply}}</div>
<div class="message-snippet">{{.Snippet}}</div>
</div>
{{end}}{{end}}
{{if gt .TotalPages 1}}<div class="pagination">
<div class="pagination-controls">
{{if .PrevURL}}<a href="{{.PrevURL}}" class="page-link">&laquo; Previous</a>{{else}}<span class="page-link disabled">&laquo; Previous</span>{{end}}
{{range .Pages}}{{if .Current}}<span class="page-link current">{{.Number}}</span>{{else}}<a href="{{.URL}}" class="page-link">{{.Number}}</a>{{end}}
{{end}}{{if .NextURL}}<a href="{{.NextURL}}" class="page-link">Next &raquo;</a>{{else}}<span class="page-link disabled">Next &raquo;</span>{{end}}
</div>
</div>
{{end}}</main>
<footer><p>Generated by mboxsite</p></footer>
<script src="static/script.js"></script>
</body>
</html>
`
