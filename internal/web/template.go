package web

const pageTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Unit Converter</title>
<style>
body { font-family: sans-serif; max-width: 900px; margin: 2rem auto; }
form label { display: inline-block; margin-right: 1rem; }
pre { background: #f4f4f4; padding: 0.5rem; min-height: 1.2em; }
</style>
</head>
<body>
<h2>🌍 Unit Converter</h2>
<p>Choose a category, units, enter a value, and press Convert.</p>
<form method="post" action="/convert">
  <label>Category
    <select name="category" id="category">
      {{range .Categories}}<option value="{{.}}"{{if eq . $.Category}} selected{{end}}>{{.}}</option>
      {{end}}
    </select>
  </label>
  <label>From Unit
    <select name="from" id="from">
      {{range .Units}}<option value="{{.}}"{{if eq . $.From}} selected{{end}}>{{.}}</option>
      {{end}}
    </select>
  </label>
  <label>To Unit
    <select name="to" id="to">
      {{range .Units}}<option value="{{.}}"{{if eq . $.To}} selected{{end}}>{{.}}</option>
      {{end}}
    </select>
  </label>
  <label>Value <input type="number" step="any" name="value" value="{{.Value}}"></label>
  <button type="submit">Convert</button>
</form>
<h3>Result</h3>
<pre>{{.Result}}</pre>
<h3>History (last 10)</h3>
<pre>{{.History}}</pre>
<script>
document.getElementById("category").addEventListener("change", async (ev) => {
  const resp = await fetch("/units?category=" + encodeURIComponent(ev.target.value));
  if (!resp.ok) {
    return;
  }
  const data = await resp.json();
  const fill = (sel, value) => {
    sel.innerHTML = "";
    for (const u of data.units) {
      const opt = document.createElement("option");
      opt.value = u;
      opt.textContent = u;
      sel.appendChild(opt);
    }
    sel.value = value;
  };
  fill(document.getElementById("from"), data.units[0]);
  fill(document.getElementById("to"), data.units.length > 1 ? data.units[1] : data.units[0]);
});
</script>
</body>
</html>
`
