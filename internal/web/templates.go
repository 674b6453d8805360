package web

import "html/template"

// The page shells render static chrome only; data arrives over the socket as
// rendered fragments. Escaping is handled by html/template throughout.
var pages = template.Must(template.New("pages").Parse(`
{{define "layout_head"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/static/app.css">
</head>
<body data-page="{{.Page}}">
<header class="site-header">
  <nav class="site-nav"><a href="/">Taskboard</a></nav>
</header>
<div id="loader" class="loader" aria-hidden="false">Loading…</div>
{{end}}

{{define "layout_foot"}}
<footer class="site-footer">
  <small>&copy; <span id="year">{{.Year}}</span> Taskboard</small>
</footer>
<script>{{.Script}}</script>
</body>
</html>
{{end}}

{{define "home"}}{{template "layout_head" .}}
<main class="site-main" id="main">
  <section class="hero">
    <h1>Users &amp; projects</h1>
    <form id="searchForm" role="search">
      <input id="searchInput" type="search" placeholder="Search users and tasks" aria-label="Search">
      <button type="button" id="clearSearch" hidden>Clear</button>
    </form>
  </section>
  <section class="users">
    <div id="usersGrid" class="users-grid" aria-live="polite"></div>
    <button id="loadMore" class="btn-secondary" hidden>Load more</button>
  </section>
</main>
{{template "layout_foot" .}}{{end}}

{{define "user"}}{{template "layout_head" .}}
<main class="site-main" id="main">
  <nav class="breadcrumb"><a href="/">Home</a> / <span id="breadcrumbUser">User</span></nav>
  <section id="userInfo" class="user-info" aria-live="polite"></section>
  <section class="todos">
    <div class="todos-header">
      <h2>Tasks</h2>
      <span id="todoCount" class="badge" aria-live="polite">0</span>
    </div>
    <form id="todoForm" novalidate>
      <input id="todoTitle" type="text" minlength="3" maxlength="120" placeholder="New task title">
      <label><input id="todoCompleted" type="checkbox"> done</label>
      <button type="submit" id="todoSubmit" class="btn-primary">Add</button>
      <p id="formMsg" class="form-msg" role="alert" aria-live="assertive"></p>
    </form>
    <div class="filters" role="group" aria-label="Completion filter">
      <button class="filter-btn" data-filter="all" aria-pressed="true">All</button>
      <button class="filter-btn" data-filter="open" aria-pressed="false">Open</button>
      <button class="filter-btn" data-filter="done" aria-pressed="false">Done</button>
    </div>
    <ul id="todosList" class="todo-list"></ul>
  </section>
</main>
{{template "layout_foot" .}}{{end}}
`))

// Fragments rendered on the server and pushed over the socket.
var fragments = template.Must(template.New("fragments").Parse(`
{{define "users_grid"}}{{if .Users}}{{range .Users}}
<article class="user-card">
  <div class="user-card-header">
    <h3><a href="/users/{{.User.ID}}">{{.User.Name}}</a></h3>
    <div class="user-card-company">{{.User.Company.Name}}</div>
    <span class="badge" aria-label="{{.CompletedCount}} tasks done">{{.CompletedCount}}</span>
  </div>
  <ul class="user-card-meta">
    <li><span>Username</span> {{.User.Username}}</li>
    <li><span>City</span> {{.User.Address.City}}</li>
    <li><span>Email</span> <a href="mailto:{{.User.Email}}">{{.User.Email}}</a></li>
    <li><span>Phone</span> {{.User.Phone}}</li>
    <li><span>Website</span> {{.User.Website}}</li>
  </ul>
  {{if .User.Company.CatchPhrase}}<p class="user-card-catch">&laquo; {{.User.Company.CatchPhrase}} &raquo;</p>{{end}}
  {{if .FirstTasks}}<ul class="user-card-tags">{{range .FirstTasks}}<li>{{.Title}}</li>{{end}}</ul>{{end}}
</article>
{{end}}{{else}}<p class="empty-state" {{if not .Searching}}role="alert"{{end}}>{{.EmptyMessage}}</p>{{end}}{{end}}

{{define "user_info"}}
<div class="user-info-header">
  <h1 id="userTitle">{{.User.Name}}</h1>
  <p class="user-info-subtitle">Username: {{.User.Username}} &bull; Company: {{.User.Company.Name}} &bull; City: {{.User.Address.City}}</p>
</div>
<div class="user-info-grid">
  <article>
    <h3>Contact</h3>
    <ul>
      <li><span>Email</span> <a href="mailto:{{.User.Email}}">{{.User.Email}}</a></li>
      <li><span>Phone</span> {{.User.Phone}}</li>
      <li><span>Website</span> {{.User.Website}}</li>
      <li><span>Tasks loaded</span> {{.TaskCount}}</li>
      <li><span>Tasks done</span> {{.CompletedCount}}</li>
    </ul>
  </article>
  <article>
    <h3>Address</h3>
    <ul>
      <li><span>Street</span> {{.User.Address.Street}}</li>
      <li><span>Suite</span> {{.User.Address.Suite}}</li>
      <li><span>Zipcode</span> {{.User.Address.Zipcode}}</li>
      <li><span>City</span> {{.User.Address.City}}</li>
      <li><span>GPS</span> {{.User.Address.Geo.Lat}} / {{.User.Address.Geo.Lng}}</li>
    </ul>
  </article>
  <article>
    <h3>Company</h3>
    <ul>
      <li><span>Name</span> {{.User.Company.Name}}</li>
      <li><span>Catchphrase</span> {{.User.Company.CatchPhrase}}</li>
      <li><span>Business</span> {{.User.Company.BS}}</li>
      <li><span>Internal id</span> {{.User.ID}}</li>
    </ul>
  </article>
</div>
{{end}}

{{define "todos_list"}}{{if .Tasks}}{{range .Tasks}}
<li class="todo-item{{if .Completed}} done{{end}}" data-id="{{.ID}}">
  <label class="todo-check">
    <input type="checkbox" {{if .Completed}}checked{{end}} data-id="{{.ID}}">
  </label>
  <div class="todo-body">
    <p class="todo-title">{{.Title}}</p>
    <div class="todo-meta">
      <span class="status">{{if .Completed}}Done{{else}}Open{{end}}</span>
      <span>ID {{.ID}}</span>
    </div>
  </div>
</li>
{{end}}{{else}}<li class="empty-state">No tasks.</li>{{end}}{{end}}

{{define "error_region"}}<div class="empty-state" role="alert">{{.Message}}</div>{{end}}
`))
