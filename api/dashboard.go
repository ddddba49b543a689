/*
dashboard.go - Embedded single-page dashboard

PURPOSE:
  The whole frontend as one HTML string served at "/". Plain fetch calls
  against the JSON API, chart <img> tags against the PNG endpoints, no
  build step. After every successful mutation the page reloads its tables
  and cache-busts the chart images.
*/
package api

import "net/http"

// Dashboard serves the embedded dashboard page.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(dashboardHTML))
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Mitarbeiter-Abwesenheitsmanagement</title>
<style>
*,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Helvetica,Arial,sans-serif;background:#f4f7fb;color:#1f2328;line-height:1.5;padding:20px}
.container{max-width:1200px;margin:0 auto}
h1{text-align:center;color:#0056b3;margin-bottom:20px}
h3{color:#0056b3;margin-bottom:12px}
.card{background:#fff;border:1px solid #ddd;border-radius:8px;box-shadow:0 2px 4px rgba(0,0,0,.1);padding:20px;margin-bottom:20px}
.flex{display:flex;align-items:flex-end;gap:20px;flex-wrap:wrap}
.field{flex:1;min-width:160px}
label{font-weight:bold;display:block;margin-bottom:4px}
input,select{width:100%;padding:8px;border:1px solid #ccc;border-radius:4px;font-size:14px}
button{background:#0056b3;color:#fff;border:none;border-radius:4px;padding:10px 15px;cursor:pointer;font-size:14px}
button:hover{background:#003d82}
button.secondary{background:#6c757d}
table{width:100%;border-collapse:collapse;margin-top:8px}
th,td{border:1px solid #ddd;padding:6px 10px;text-align:left;font-size:14px}
th{background:#f0f4f8;color:#0056b3}
.feedback{margin-top:10px;min-height:1.2em}
.feedback.ok{color:green}
.feedback.err{color:#cf222e}
.chart{width:100%;max-width:1024px;display:block;margin:12px auto;border:1px solid #eee}
#other-reason{display:none;margin-top:8px}
.muted{color:#656d76;font-size:13px}
</style>
</head>
<body>
<div class="container">
  <h1>Mitarbeiter-Abwesenheitsmanagement</h1>

  <div class="card">
    <h3>Abwesenheit hinzufügen</h3>
    <div class="flex">
      <div class="field"><label for="name">Name</label><input id="name" placeholder="Name des Mitarbeiters"></div>
      <div class="field"><label for="start">Startdatum</label><input id="start" type="date"></div>
      <div class="field"><label for="end">Enddatum</label><input id="end" type="date"></div>
      <div class="field">
        <label for="reason">Grund</label>
        <select id="reason"></select>
        <input id="other-reason" placeholder="Anderen Grund angeben">
      </div>
      <div><button id="add">Abwesenheit hinzufügen</button></div>
    </div>
    <div id="add-feedback" class="feedback"></div>
  </div>

  <div class="card">
    <h3>Abwesenheitsaufzeichnungen</h3>
    <table id="records">
      <thead><tr><th>Mitarbeiter-ID</th><th>Name</th><th>Startdatum</th><th>Enddatum</th><th>Grund</th><th>Fehltage</th></tr></thead>
      <tbody></tbody>
    </table>
    <div class="flex" style="margin-top:16px">
      <div class="field"><label for="export-from">Von</label><input id="export-from" type="date"></div>
      <div class="field"><label for="export-to">Bis</label><input id="export-to" type="date"></div>
      <div><button id="export-csv">CSV herunterladen</button></div>
      <div><button id="export-excel">Excel herunterladen</button></div>
    </div>
    <div id="export-feedback" class="feedback err"></div>
  </div>

  <div class="card">
    <h3>Übersicht: Summe Krank-Fehltage pro Mitarbeiter (mit Smiley)</h3>
    <table id="sick-summary">
      <thead><tr><th>Mitarbeiter-ID</th><th>Name</th><th>Summe Krank-Fehltage</th><th>Smiley</th></tr></thead>
      <tbody></tbody>
    </table>
  </div>

  <div class="card">
    <h3>Abwesenheitstrends</h3>
    <img class="chart" id="chart-reasons" alt="Abwesenheitstrends nach Grund">
    <img class="chart" id="chart-weekdays" alt="Abwesenheitstrends nach Wochentag">
    <img class="chart" id="chart-months" alt="Abwesenheitstrends nach Monat">
    <img class="chart" id="chart-durations" alt="Verteilung der Abwesenheitsdauer">
  </div>

  <div class="card">
    <h3>Statistische Analyse</h3>
    <img class="chart" id="chart-statistics" alt="Statistische Analyse">
  </div>

  <div class="card">
    <h3>Demo-Daten</h3>
    <div class="flex">
      <div><button class="secondary" data-scenario="demo-year">Demo-Jahr laden</button></div>
      <div><button class="secondary" data-scenario="small-team">Kleines Team laden</button></div>
      <div><button class="secondary" id="reset">Alles löschen</button></div>
    </div>
    <p class="muted">Das Laden eines Szenarios ersetzt alle Aufzeichnungen.</p>
  </div>
</div>

<script>
const chartIDs = ["reasons","weekdays","months","durations","statistics"];

async function loadReasons(){
  const res = await fetch("/api/reasons");
  const reasons = await res.json();
  const sel = document.getElementById("reason");
  sel.innerHTML = "";
  for(const r of reasons){
    const opt = document.createElement("option");
    opt.value = r; opt.textContent = r;
    sel.appendChild(opt);
  }
}

function cell(text){const td=document.createElement("td");td.textContent=text;return td}

async function loadRecords(){
  const res = await fetch("/api/absences");
  const rows = await res.json();
  const tbody = document.querySelector("#records tbody");
  tbody.innerHTML = "";
  for(const r of rows){
    const tr = document.createElement("tr");
    tr.append(cell(r.employee_id),cell(r.name),cell(r.start_date),cell(r.end_date),cell(r.reason),cell(r.absence_days));
    tbody.appendChild(tr);
  }
}

async function loadSickSummary(){
  const res = await fetch("/api/summary/sick");
  const rows = await res.json();
  const tbody = document.querySelector("#sick-summary tbody");
  tbody.innerHTML = "";
  for(const r of rows){
    const tr = document.createElement("tr");
    tr.append(cell(r.employee_id),cell(r.name),cell(r.sick_days),cell(r.smiley));
    tbody.appendChild(tr);
  }
}

function refreshCharts(){
  const bust = Date.now();
  for(const id of chartIDs){
    document.getElementById("chart-"+id).src = "/api/charts/"+id+".png?t="+bust;
  }
}

async function refreshAll(){
  await Promise.all([loadRecords(), loadSickSummary()]);
  refreshCharts();
}

document.getElementById("reason").addEventListener("change", e => {
  document.getElementById("other-reason").style.display =
    e.target.value === "Andere" ? "block" : "none";
});

document.getElementById("add").addEventListener("click", async () => {
  const fb = document.getElementById("add-feedback");
  fb.className = "feedback";
  const body = {
    name: document.getElementById("name").value,
    start_date: document.getElementById("start").value,
    end_date: document.getElementById("end").value,
    reason: document.getElementById("reason").value,
    other_reason: document.getElementById("other-reason").value
  };
  const res = await fetch("/api/absences", {
    method:"POST", headers:{"Content-Type":"application/json"}, body:JSON.stringify(body)
  });
  const data = await res.json();
  if(res.ok){
    fb.classList.add("ok"); fb.textContent = data.message;
    await refreshAll();
  } else {
    fb.classList.add("err"); fb.textContent = data.error;
  }
});

function exportURL(kind){
  const from = document.getElementById("export-from").value;
  const to = document.getElementById("export-to").value;
  return "/api/export/"+kind+"?from="+from+"&to="+to;
}

async function doExport(kind){
  const fb = document.getElementById("export-feedback");
  fb.textContent = "";
  const res = await fetch(exportURL(kind));
  if(!res.ok){
    const data = await res.json();
    fb.textContent = data.error;
    return;
  }
  const blob = await res.blob();
  const a = document.createElement("a");
  a.href = URL.createObjectURL(blob);
  a.download = kind === "csv" ? "abwesenheitsaufzeichnungen.csv" : "abwesenheitsaufzeichnungen.xlsx";
  a.click();
  URL.revokeObjectURL(a.href);
}

document.getElementById("export-csv").addEventListener("click", () => doExport("csv"));
document.getElementById("export-excel").addEventListener("click", () => doExport("excel"));

for(const btn of document.querySelectorAll("[data-scenario]")){
  btn.addEventListener("click", async () => {
    await fetch("/api/scenarios/load", {
      method:"POST", headers:{"Content-Type":"application/json"},
      body:JSON.stringify({scenario_id: btn.dataset.scenario})
    });
    await refreshAll();
  });
}

document.getElementById("reset").addEventListener("click", async () => {
  await fetch("/api/scenarios/reset", {method:"POST"});
  await refreshAll();
});

loadReasons().then(refreshAll);
</script>
</body>
</html>
`
