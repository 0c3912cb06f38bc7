package pages

import "html/template"

const layoutTemplate = `
{{define "header"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} | IPL Cricket Hub</title>
</head>
<body>
<nav class="site-nav">
  <a href="/" class="{{if eq .Active "home"}}active{{end}}">Teams</a>
  <a href="/fixtures" class="{{if eq .Active "fixtures"}}active{{end}}">Fixtures</a>
  <a href="/points" class="{{if eq .Active "points"}}active{{end}}">Points Table</a>
  <a href="/live" class="{{if eq .Active "live"}}active{{end}}">Live</a>
</nav>
<main>
<h1>{{.Title}}</h1>
{{end}}

{{define "footer"}}
</main>
<footer><p>IPL Cricket Hub</p></footer>
</body>
</html>{{end}}

{{define "notfound"}}{{template "header" .}}
<p class="placeholder">We could not find that page. <a href="/">Back to the teams</a></p>
{{template "footer" .}}{{end}}

{{define "fixture-card"}}
<div class="fixture-card status-{{.Status}}" data-id="{{.ID}}">
  <span class="match-number">Match {{.MatchNumber}}</span>
  <span class="status-badge">{{.Status}}</span>
  <div class="teams">
    <img src="/{{.Team1Logo}}" alt="{{.Team1}}"><span class="team1">{{.Team1Name}}</span>
    <span class="vs">vs</span>
    <img src="/{{.Team2Logo}}" alt="{{.Team2}}"><span class="team2">{{.Team2Name}}</span>
  </div>
  <div class="when">{{.Date}}{{if .Time}} {{.Time}}{{end}}</div>
  <div class="venue">{{.Venue}}</div>
</div>
{{end}}
`

const homeTemplate = `
{{define "home"}}{{template "header" .}}
<section class="summary">
  <span class="team-count">{{len .Teams}}</span> teams,
  <span class="player-count">{{.TotalPlayers}}</span> players,
  <span class="fixture-count">{{.FixtureCount}}</span> fixtures
</section>
{{if .Unavailable}}<p class="placeholder">Some data is temporarily unavailable.</p>{{end}}
{{with .Next}}<section class="next-match"><h2>Next match</h2>{{template "fixture-card" .}}</section>{{end}}
<section class="teams-grid">
{{range .Teams}}
  <a class="team-card" href="/teams/{{.Code}}" style="border-color: {{.Color}}" data-code="{{.Code}}">
    <img src="/{{.Logo}}" alt="{{.Code}}">
    <h3>{{.Name}}</h3>
    <span class="city">{{.City}}</span>
    <span class="squad-size">{{.PlayerCount}} players</span>
  </a>
{{end}}
</section>
{{template "footer" .}}{{end}}
`

const teamTemplate = `
{{define "team"}}{{template "header" .}}
<section class="team-header" style="border-color: {{.Team.Color}}">
  <img src="/{{.Team.Logo}}" alt="{{.Team.Code}}">
  <span class="code">{{.Team.Code}}</span> <span class="city">{{.Team.City}}</span>
</section>
{{if .Unavailable}}<p class="placeholder">The squad is temporarily unavailable.</p>
{{else if not .Groups}}<p class="placeholder">No players added yet.</p>
{{end}}
{{range .Groups}}
<section class="role-group" data-role="{{.Role}}">
  <h2>{{.Role}}s</h2>
  <ul>
  {{range .Players}}
    <li class="player">
      <span class="name">{{.Name}}</span>
      {{if .IsCaptain}}<span class="badge captain">C</span>{{end}}
      {{if .IsViceCaptain}}<span class="badge vice-captain">VC</span>{{end}}
      {{if .IsForeign}}<span class="badge overseas">✈</span>{{end}}
      {{if .Nationality}}<span class="nationality">{{.Nationality}}</span>{{end}}
      {{if .Stats.Matches}}<span class="stats">{{.Stats.Matches}} matches, {{.Stats.Runs}} runs, {{.Stats.Wickets}} wickets</span>{{end}}
    </li>
  {{end}}
  </ul>
</section>
{{end}}
{{template "footer" .}}{{end}}
`

const fixturesTemplate = `
{{define "fixtures"}}{{template "header" .}}
<nav class="status-filter">
  <a href="/fixtures" class="{{if eq .Status ""}}active{{end}}">All</a>
  {{$current := .Status}}
  {{range .Statuses}}<a href="/fixtures?status={{.}}" class="{{if eq . $current}}active{{end}}">{{.}}</a>{{end}}
</nav>
{{if .Unavailable}}<p class="placeholder">Fixtures are temporarily unavailable.</p>
{{else if not .Fixtures}}<p class="placeholder">No fixtures to show.</p>
{{end}}
<section class="fixtures">
{{range .Fixtures}}{{template "fixture-card" .}}{{end}}
</section>
{{template "footer" .}}{{end}}
`

const pointsTemplate = `
{{define "points"}}{{template "header" .}}
{{if .Unavailable}}<p class="placeholder">The points table is temporarily unavailable.</p>
{{else if not .Rows}}<p class="placeholder">The points table has not been published yet.</p>
{{else}}
<table class="points-table">
  <thead><tr><th>#</th><th>Team</th><th>M</th><th>W</th><th>L</th><th>Pts</th><th>NRR</th><th>Form</th></tr></thead>
  <tbody>
  {{range .Rows}}
    <tr class="{{if .Qualified}}qualified{{end}}" data-team="{{.Team}}">
      <td class="rank">{{.Rank}}</td>
      <td class="team"><img src="/{{.Logo}}" alt="{{.Team}}"> {{.Name}}</td>
      <td>{{.Matches}}</td><td>{{.Won}}</td><td>{{.Lost}}</td>
      <td class="points">{{.Points}}</td>
      <td class="nrr">{{printf "%+.3f" .NRR}}</td>
      <td class="form">{{range .Form}}<span class="form-{{.}}">{{.}}</span>{{end}}</td>
    </tr>
  {{end}}
  </tbody>
</table>
{{end}}
{{template "footer" .}}{{end}}
`

const liveTemplate = `
{{define "live"}}{{template "header" .}}
<section class="scoreboard">
{{if .IsLive}}
  <span class="live-indicator">LIVE</span>
  {{with .Match}}
  <div class="score"><span class="team1">{{.Team1}}</span> {{.Score1}}</div>
  <div class="score"><span class="team2">{{.Team2}}</span> {{.Score2}}</div>
  {{with .Bowler}}<div class="bowler">Bowling: {{.Name}} {{.Stats}}</div>{{end}}
  {{if .Insight}}<div class="insight">{{.Insight}}</div>{{end}}
  {{end}}
{{else}}
  <p class="placeholder off-air">No match is live right now.</p>
  {{with .Next}}<div class="upcoming-match"><h2>Upcoming match</h2>{{template "fixture-card" .}}</div>{{end}}
{{end}}
</section>

<div id="newCommentaryNotification" class="banner" hidden>New commentary added!</div>
<section class="commentary" id="commentaryContainer" data-stream="/live/stream" data-dismiss="/api/live/sessions/">
  <h2>Commentary</h2>
  <div class="commentary-list">
  {{if .CommentaryUnavailable}}<p class="placeholder">Commentary is temporarily unavailable. Retrying shortly.</p>
  {{else if not .Commentary}}<p class="placeholder no-commentary">Waiting for live commentary...</p>
  {{end}}
  {{range .Commentary}}
  <div class="commentary-item" data-id="{{.ID}}">
    <span class="commentary-over">Over {{.Over}}</span>
    <span class="commentary-time">{{.TimeAgo}}</span>
    <div class="commentary-text">{{.Enhanced}}</div>
  </div>
  {{end}}
  </div>
</section>
<script id="liveFeed">
(function () {
  var container = document.getElementById("commentaryContainer");
  var list = container.querySelector(".commentary-list");
  var banner = document.getElementById("newCommentaryNotification");
  var sessionId = "";
  if (!window.EventSource) {
    return;
  }

  function el(tag, cls, text) {
    var node = document.createElement(tag);
    node.className = cls;
    node.textContent = text;
    return node;
  }

  function render(snap) {
    list.textContent = "";
    if (snap.placeholder) {
      list.appendChild(el("p", "placeholder", snap.placeholder));
    }
    (snap.items || []).forEach(function (item) {
      var row = el("div", "commentary-item", "");
      row.dataset.id = item.id;
      row.appendChild(el("span", "commentary-over", "Over " + item.over));
      row.appendChild(el("span", "commentary-time", item.timeAgo));
      row.appendChild(el("div", "commentary-text", item.enhanced || item.text));
      list.appendChild(row);
    });
  }

  var source = new EventSource(container.dataset.stream);
  source.addEventListener("session", function (e) {
    sessionId = JSON.parse(e.data).id;
  });
  source.addEventListener("render", function (e) {
    render(JSON.parse(e.data));
    banner.hidden = true;
  });
  source.addEventListener("banner", function (e) {
    render(JSON.parse(e.data));
    banner.hidden = false;
  });
  source.addEventListener("error", function (e) {
    // connection errors carry no data; EventSource reconnects by itself
    if (e.data) {
      render(JSON.parse(e.data));
    }
  });

  banner.addEventListener("click", function () {
    banner.hidden = true;
    if (sessionId) {
      fetch(container.dataset.dismiss + encodeURIComponent(sessionId) + "/dismiss", {method: "POST"});
    }
  });
})();
</script>

<section class="key-moments">
  <h2>Key moments</h2>
  {{if not .Moments}}<p class="placeholder">No key moments yet.</p>{{end}}
  {{range .Moments}}
  <div class="moment moment-{{.Type}}"><span class="over">{{.Over}}</span> {{.Description}}</div>
  {{end}}
</section>

<section class="user-comments">
  <h2>Comments (<span id="commentsCount">{{len .Comments}}</span>)</h2>
  {{if .CommentsUnavailable}}<p class="placeholder">Comments are temporarily unavailable.</p>
  {{else if not .Comments}}<p class="placeholder no-comments">No comments yet. Be the first to share your thoughts!</p>
  {{end}}
  {{range .Comments}}
  <div class="user-comment-item">
    <span class="comment-avatar">{{.Initial}}</span>
    <span class="comment-author-name">{{.Author}}</span>
    <span class="comment-time">{{.TimeAgo}}</span>
    <div class="comment-text-user">{{.Text}}</div>
  </div>
  {{end}}
</section>
{{template "footer" .}}{{end}}
`

// Templates parses every page template into one set for gin's SetHTMLTemplate.
func Templates() *template.Template {
	t := template.New("pages")
	for _, src := range []string{layoutTemplate, homeTemplate, teamTemplate, fixturesTemplate, pointsTemplate, liveTemplate} {
		t = template.Must(t.Parse(src))
	}
	return t
}
