package form

// Control markup, one template per field-type shape. Floating labels
// are emitted after the control so the stylesheet can move them on
// :focus / :placeholder-shown; radio and checkbox groups use a legend
// instead.

const inputTmpl = `{{define "input"}}<div class="control floating-label">
<input type="{{.Field.Type}}" id="{{.Field.ID}}" name="{{.Field.ID}}" value="{{str .Value}}" placeholder="{{or .Field.Placeholder " "}}"{{if .Field.Required}} required{{end}}>
<label for="{{.Field.ID}}">{{.Field.Label}}</label>
</div>{{end}}`

const textareaTmpl = `{{define "textarea"}}<div class="control floating-label">
<textarea id="{{.Field.ID}}" name="{{.Field.ID}}" placeholder="{{or .Field.Placeholder " "}}"{{if .Field.Required}} required{{end}}>{{str .Value}}</textarea>
<label for="{{.Field.ID}}">{{.Field.Label}}</label>
</div>{{end}}`

const selectTmpl = `{{define "select"}}<div class="control floating-label">
<select id="{{.Field.ID}}" name="{{.Field.ID}}"{{if .Field.Required}} required{{end}}>
<option value=""></option>
{{range .Field.Options}}<option value="{{.}}"{{if selected $.Value .}} selected{{end}}>{{.}}</option>
{{end}}</select>
<label for="{{.Field.ID}}">{{.Field.Label}}</label>
</div>{{end}}`

const radioTmpl = `{{define "radio"}}<fieldset class="control choice-group">
<legend>{{.Field.Label}}</legend>
{{range .Field.Options}}<label class="choice">
<input type="radio" name="{{$.Field.ID}}" value="{{.}}"{{if selected $.Value .}} checked{{end}}> {{.}}
</label>
{{end}}</fieldset>{{end}}`

const checkboxTmpl = `{{define "checkbox"}}<fieldset class="control choice-group">
<legend>{{.Field.Label}}</legend>
{{range .Field.Options}}<label class="choice">
<input type="checkbox" name="{{$.Field.ID}}" value="{{.}}"{{if checked $.Value .}} checked{{end}}> {{.}}
</label>
{{end}}</fieldset>{{end}}`

const fieldTmpl = `{{define "field"}}<div class="form-field{{if .Error}} has-error{{end}}" data-type="{{.Field.Type}}">
{{.Control}}{{with .Field.HelpText}}<small class="help-text">{{.}}</small>
{{end}}{{with .Error}}<p class="field-error">{{.}}</p>
{{end}}</div>{{end}}`

// Registration page, including the payment step markup the flow
// controller drives. Rendered server-side for GET /register/{slug}.

const registerPageTmpl = `{{define "register"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Form.Title}} — Registration</title>
<link rel="stylesheet" href="/css/site.css">
</head>
<body>
<main class="register-page">
{{with .Form.BannerURL}}<img class="banner" src="{{.}}" alt="">
{{end}}<header>
{{with .Form.LogoURL}}<img class="logo" src="{{.}}" alt="">
{{end}}<h1>{{.Form.Title}}</h1>
<div class="description">{{.Form.Description}}</div>
</header>
<form id="registration" method="post" action="/api/forms/{{.Form.GameSlug}}/submissions">
<section class="step step-details" data-step="details">
{{.FieldsHTML}}</section>
<section class="step step-payment" data-step="payment" hidden>
<h2>Payment</h2>
{{range .Methods}}<label class="payment-method">
<input type="radio" name="paymentMethodId" value="{{.ID}}"{{if eq .ID $.SelectedMethod}} checked{{end}}>
{{with .LogoURL}}<img src="{{.}}" alt="">{{end}}
<span class="name">{{.Name}}</span>
<span class="number">{{.Number}} ({{.AccountType}})</span>
<span class="instructions">{{.Instructions}}</span>
</label>
{{end}}<div class="control floating-label">
<input type="text" id="transactionId" name="transactionId" placeholder=" " required>
<label for="transactionId">Transaction ID</label>
</div>
</section>
<footer class="form-nav">
<button type="button" class="back" hidden>Back</button>
<button type="button" class="next">Next</button>
<button type="submit" class="submit" hidden disabled>Submit</button>
</footer>
</form>
</main>
<script src="/js/register.js"></script>
</body>
</html>{{end}}`

const offlinePageTmpl = `{{define "offline"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Registration closed</title>
<link rel="stylesheet" href="/css/site.css">
</head>
<body>
<main class="offline-page">
<h1>Registrations are closed</h1>
<p>This registration form is not available right now. Check back later or contact the committee.</p>
</main>
</body>
</html>{{end}}`
