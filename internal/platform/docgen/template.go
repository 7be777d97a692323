package docgen

// documentTemplate is the single layout shared by every document type; the
// type label and version banner distinguish the artifacts.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #1f2933; margin: 48px; }
  header { border-bottom: 2px solid #1f2933; padding-bottom: 16px; margin-bottom: 32px; }
  header h1 { margin: 0 0 4px; font-size: 22px; }
  header .company { font-size: 13px; color: #52606d; }
  .meta { font-size: 12px; color: #52606d; margin-bottom: 24px; }
  table.details { width: 100%; border-collapse: collapse; margin-bottom: 32px; }
  table.details td { padding: 6px 12px 6px 0; font-size: 14px; vertical-align: top; }
  table.details td.label { width: 200px; color: #52606d; }
  .signature { margin-top: 64px; }
  .signature .line { width: 260px; border-top: 1px solid #1f2933; padding-top: 6px; font-size: 13px; }
</style>
</head>
<body>
<header>
  <h1>{{.DocTypeLabel}}</h1>
  <div class="company">{{.CompanyName}}{{if .CompanyAddress}} &middot; {{.CompanyAddress}}{{end}}</div>
</header>

<div class="meta">Reference {{.DealCode}} &middot; Version {{.VersionNo}} &middot; Issued {{.GeneratedAt}}</div>

<table class="details">
  <tr><td class="label">Tenant</td><td>{{.TenantName}}{{if .TenantCompany}} ({{.TenantCompany}}){{end}}</td></tr>
  {{if .TenantPhone}}<tr><td class="label">Phone</td><td>{{.TenantPhone}}</td></tr>{{end}}
  {{if .TenantEmail}}<tr><td class="label">Email</td><td>{{.TenantEmail}}</td></tr>{{end}}
  <tr><td class="label">Unit</td><td>{{.UnitCode}}{{if .UnitType}} &mdash; {{.UnitType}}{{end}}</td></tr>
  <tr><td class="label">Term</td><td>{{.TermLabel}}</td></tr>
  <tr><td class="label">Start date</td><td>{{.StartDate}}</td></tr>
  {{if .EndDate}}<tr><td class="label">End date</td><td>{{.EndDate}}</td></tr>{{end}}
  <tr><td class="label">Price</td><td>{{.Currency}} {{.Price}}</td></tr>
  {{if .MoveInDate}}<tr><td class="label">Move-in date</td><td>{{.MoveInDate}}</td></tr>{{end}}
  {{if .MoveInNotes}}<tr><td class="label">Move-in notes</td><td>{{.MoveInNotes}}</td></tr>{{end}}
</table>

<p>This {{.DocTypeLabel}} is issued by {{.CompanyName}} for the rental arrangement referenced above. Terms and conditions communicated alongside this document apply.</p>

<div class="signature">
  <div class="line">
    {{if .SignatoryName}}{{.SignatoryName}}{{else}}Authorised Signatory{{end}}
    {{if .SignatoryTitle}}<br>{{.SignatoryTitle}}{{end}}
    <br>{{.CompanyName}}
  </div>
</div>
</body>
</html>
`
