package web

// Client-side glue: open the socket, forward interactions as commands, swap
// pushed fragments into place. The loader is force-hidden after six seconds
// even if the load never completes.

const sharedScript = `
function $(sel) { return document.querySelector(sel); }
function hideLoader() {
  var el = $("#loader");
  if (el) { el.classList.remove("active"); el.setAttribute("aria-hidden", "true"); }
}
function showLoader() {
  var el = $("#loader");
  if (el) { el.classList.add("active"); el.setAttribute("aria-hidden", "false"); }
}
setTimeout(hideLoader, 6000);
function openSocket(view, onMessage) {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws?" + view);
  ws.onmessage = function (ev) { onMessage(JSON.parse(ev.data)); };
  return ws;
}
function send(ws, cmd) {
  if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(cmd));
}
`

const homeScript = sharedScript + `
showLoader();
var ws = openSocket("view=home", function (u) {
  hideLoader();
  if (u.target) { $("#" + u.target).innerHTML = u.html; }
  var more = $("#loadMore");
  if (more) more.hidden = !u.showMore;
});
$("#searchInput").addEventListener("input", function () {
  var q = this.value;
  $("#clearSearch").hidden = q.trim() === "";
  send(ws, { action: "query", value: q });
});
$("#clearSearch").addEventListener("click", function () {
  $("#searchInput").value = "";
  this.hidden = true;
  send(ws, { action: "clear" });
  $("#searchInput").focus();
});
$("#searchForm").addEventListener("submit", function (e) { e.preventDefault(); });
$("#loadMore").addEventListener("click", function () {
  send(ws, { action: "more" });
});
`

const userScript = sharedScript + `
var userID = %d;
showLoader();
var ws = openSocket("view=user&id=" + userID, function (u) {
  hideLoader();
  if (u.target) { $("#" + u.target).innerHTML = u.html; }
  if (u.count !== undefined && u.count !== null) { $("#todoCount").textContent = String(u.count); }
  if (u.form) {
    var msg = $("#formMsg");
    msg.textContent = u.msg || "";
    msg.className = "form-msg " + u.form;
    var busy = u.form === "submitting";
    $("#todoTitle").disabled = busy;
    $("#todoSubmit").disabled = busy;
    if (u.form === "success") { $("#todoForm").reset(); }
  }
  var title = $("#userTitle");
  if (title) { $("#breadcrumbUser").textContent = title.textContent; }
});
$("#todosList").addEventListener("change", function (e) {
  if (e.target.matches("input[type=checkbox]")) {
    send(ws, { action: "toggle", id: Number(e.target.dataset.id), done: e.target.checked });
  }
});
document.querySelectorAll(".filter-btn").forEach(function (btn) {
  btn.addEventListener("click", function () {
    document.querySelectorAll(".filter-btn").forEach(function (b) {
      b.classList.remove("active");
      b.setAttribute("aria-pressed", "false");
    });
    btn.classList.add("active");
    btn.setAttribute("aria-pressed", "true");
    send(ws, { action: "filter", value: btn.dataset.filter });
  });
});
$("#todoForm").addEventListener("submit", function (e) {
  e.preventDefault();
  send(ws, {
    action: "add",
    user: userID,
    title: $("#todoTitle").value,
    done: $("#todoCompleted").checked,
  });
});
`

const stylesheet = `
:root { --ink: #1d232b; --muted: #5b6672; --accent: #2f6fed; --bg: #f5f7fa; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; color: var(--ink); background: var(--bg); }
.site-header { padding: 1rem 2rem; background: #fff; border-bottom: 1px solid #e3e8ee; }
.site-nav a { color: var(--ink); text-decoration: none; font-weight: 700; }
.site-main { max-width: 64rem; margin: 0 auto; padding: 1rem 2rem 3rem; }
.loader { display: none; padding: 0.5rem 2rem; color: var(--muted); }
.loader.active { display: block; }
.users-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(16rem, 1fr)); gap: 1rem; }
.user-card { background: #fff; border: 1px solid #e3e8ee; border-radius: 0.5rem; padding: 1rem; }
.user-card-meta { list-style: none; padding: 0; color: var(--muted); font-size: 0.9rem; }
.user-card-meta span { font-weight: 600; margin-right: 0.25rem; }
.user-card-tags { list-style: none; display: flex; flex-wrap: wrap; gap: 0.25rem; padding: 0; }
.user-card-tags li { background: var(--bg); border-radius: 1rem; padding: 0.1rem 0.6rem; font-size: 0.8rem; }
.badge { background: var(--accent); color: #fff; border-radius: 1rem; padding: 0.1rem 0.6rem; }
.empty-state { color: var(--muted); padding: 1rem 0; }
.todo-list { list-style: none; padding: 0; }
.todo-item { display: flex; gap: 0.75rem; background: #fff; border: 1px solid #e3e8ee; border-radius: 0.5rem; padding: 0.75rem; margin-bottom: 0.5rem; }
.todo-item.done .todo-title { text-decoration: line-through; color: var(--muted); }
.todo-meta { display: flex; gap: 1rem; color: var(--muted); font-size: 0.8rem; }
.filters { display: flex; gap: 0.5rem; margin: 1rem 0; }
.filter-btn { border: 1px solid #e3e8ee; background: #fff; border-radius: 1rem; padding: 0.25rem 1rem; cursor: pointer; }
.filter-btn.active { background: var(--accent); color: #fff; }
.form-msg.error { color: #b42318; }
.form-msg.success { color: #067647; }
.site-footer { padding: 1rem 2rem; color: var(--muted); }
`
