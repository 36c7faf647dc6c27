package report

const reportHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 720px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 20px 24px;
      background: linear-gradient(135deg, #1e3a5f 0%, #2d4a6b 100%);
      color: #ffffff;
    }

    .doc-title {
      font-size: 22px;
      font-weight: 700;
      margin-bottom: 4px;
    }

    .badge {
      display: inline-block;
      margin-top: 8px;
      padding: 4px 10px;
      font-size: 11px;
      font-weight: 600;
      border-radius: 4px;
      background: #2563eb;
      color: #ffffff;
      text-transform: uppercase;
      letter-spacing: 0.05em;
    }

    .section {
      padding: 16px 24px;
      border-top: 1px solid #f3f4f6;
    }

    .section-title {
      font-size: 11px;
      font-weight: 700;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      margin-bottom: 12px;
    }

    .overview p {
      font-size: 14px;
      margin: 0 0 10px 0;
    }

    .highlights-table {
      width: 100%;
      border-collapse: collapse;
      font-size: 13px;
    }

    .highlights-table th {
      text-align: left;
      padding: 6px 8px;
      color: #6b7280;
      font-weight: 600;
      border-bottom: 1px solid #e5e7eb;
      white-space: nowrap;
      vertical-align: top;
      width: 30%;
    }

    .highlights-table td {
      padding: 6px 8px;
      border-bottom: 1px solid #f3f4f6;
    }

    ul {
      margin: 0;
      padding-left: 20px;
      font-size: 14px;
    }

    li {
      margin-bottom: 6px;
    }

    .footer {
      padding: 14px 24px;
      font-size: 12px;
      color: #9ca3af;
      border-top: 1px solid #f3f4f6;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="doc-title">{{.Title}}</div>
      <span class="badge">{{.Category}}</span>
    </div>

    {{if .Overview}}
    <div class="section overview">
      <div class="section-title">Overview</div>
      {{range .Overview}}<p>{{.}}</p>
      {{end}}
    </div>
    {{end}}

    {{if .Highlights}}
    <div class="section">
      <div class="section-title">Highlights</div>
      <table class="highlights-table">
        {{range .Highlights}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
        {{end}}
      </table>
    </div>
    {{end}}

    {{if .KeyPoints}}
    <div class="section">
      <div class="section-title">Key Points</div>
      <ul>
        {{range .KeyPoints}}<li>{{.}}</li>
        {{end}}
      </ul>
    </div>
    {{end}}

    {{if .Insights}}
    <div class="section">
      <div class="section-title">Insights</div>
      <ul>
        {{range .Insights}}<li>{{.}}</li>
        {{end}}
      </ul>
    </div>
    {{end}}

    <div class="footer">
      Generated by {{.ToolName}} on {{.Generated}}
    </div>
  </div>
</body>
</html>
`
