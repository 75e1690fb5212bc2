package http

const pageTpl = `<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>tabcast</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;max-width:900px;margin:0 auto;padding:0 0 70px;background:#F9FAFB;color:#1F2937}
header{background:#fff;padding:15px 20px;border-bottom:1px solid #E5E7EB}
header h1{font-size:24px;margin:0 0 2px}
header small{color:#6B7280;font-weight:500}
.tab{display:none}
.tab.active{display:block}
nav{position:fixed;bottom:0;left:0;right:0;height:60px;display:flex;background:#fff;border-top:1px solid #E5E7EB}
nav button{flex:1;border:0;background:none;font-weight:600;font-size:12px;color:#6B7280;cursor:pointer}
nav button.active{color:#3B82F6}
.frame{position:relative;margin:15px;height:60vh;border-radius:12px;overflow:hidden;background:#fff;box-shadow:0 2px 8px rgba(0,0,0,.1)}
.frame iframe{border:0;width:100%;height:100%}
.overlay{position:absolute;inset:0;background:rgba(255,255,255,.9);display:flex;align-items:center;justify-content:center;color:#6B7280}
.row{display:flex;gap:10px;padding:0 15px}
.btn{flex:1;border:0;border-radius:12px;padding:11px 21px;color:#fff;font-weight:600;cursor:pointer}
.btn small{display:block;opacity:.8;font-weight:400;font-size:11px}
.blue{background:#3B82F6}.green{background:#10B981}
.player{position:relative;margin:15px;border-radius:12px;background:#000;color:#fff;height:300px}
.info{position:absolute;top:15px;left:15px}
.controls{position:absolute;inset:0;display:flex;align-items:center;justify-content:center;gap:30px}
.controls button{background:rgba(0,0,0,.5);color:#fff;border:0;border-radius:30px;padding:12px 16px;cursor:pointer}
.controls .play{background:rgba(59,130,246,.8)}
.extra{display:flex;justify-content:space-around;background:#fff;margin:10px 15px;border-radius:12px;padding:15px}
.extra button{border:0;background:none;color:#6B7280;font-weight:500;cursor:pointer}
.progress{margin:0 15px;height:4px;background:#E5E7EB;border-radius:2px;overflow:hidden}
.progress div{height:100%;background:#3B82F6}
.time{text-align:right;margin:4px 15px;font-size:12px}
#toast{position:fixed;top:12px;right:12px;max-width:320px}
#toast div{background:#1F2937;color:#fff;border-radius:8px;padding:10px;margin-bottom:6px}
</style>

<section class="tab active" id="tab-web">
  <header><h1>{{.Browser.Title}}</h1><small>{{.Browser.Subtitle}}</small></header>
  <div class="frame">
    <iframe id="web" src="{{.Browser.PageURL}}"></iframe>
    <div class="overlay" id="loading"{{if not .Browser.IsLoading}} hidden{{end}}>Loading website...</div>
  </div>
  <div class="row">
    <button class="btn blue" data-post="/browser/notifications/welcome">Welcome Notification<small>Triggers in 3 seconds</small></button>
    <button class="btn green" data-post="/browser/notifications/reminder">Reminder Notification<small>Triggers in 5 seconds</small></button>
  </div>
</section>

<section class="tab" id="tab-video">
  <header><h1>Video Player</h1><small>HLS streaming with controls</small></header>
  <div class="player">
    <div class="info">
      <strong id="v-title">{{.Video.Title}}</strong>
      <div id="v-time-top">{{.Video.TimeLabel}}</div>
    </div>
    <div class="controls">
      <button data-video="seek-backward">⏪ 10s</button>
      <button class="play" data-video="toggle-playback" id="v-play">{{if eq .Video.PlayIcon "pause"}}❚❚{{else}}▶{{end}}</button>
      <button data-video="seek-forward">10s ⏩</button>
    </div>
  </div>
  <div class="extra">
    <button data-video="toggle-mute" id="v-mute">{{.Video.MuteLabel}}</button>
    <button data-video="toggle-fullscreen">Fullscreen</button>
    <button data-video="restart">Restart</button>
  </div>
  <div class="extra">
    <button data-video="switch-stream" id="v-switch">{{.Video.StreamLabel}}</button>
  </div>
  <div id="v-progress"{{if not .Video.HasDuration}} hidden{{end}}>
    <div class="progress"><div id="v-fill" style="width:{{printf "%.2f" .Video.ProgressPercent}}%"></div></div>
    <div class="time" id="v-time">{{.Video.TimeLabel}}</div>
  </div>
</section>

<nav>
  <button class="active" data-tab="tab-web">🌐 WebView</button>
  <button data-tab="tab-video">▶ Video Player</button>
</nav>
<div id="toast">{{range .Alerts}}<div><strong>{{.Title}}</strong><br>{{.Message}}</div>{{end}}</div>

<script>
(function(){
  function post(path){ return fetch(path, {method:'POST'}); }
  function toast(title, msg){
    var t = document.getElementById('toast');
    var d = document.createElement('div');
    d.innerHTML = '<strong></strong><br>';
    d.firstChild.textContent = title;
    d.appendChild(document.createTextNode(msg));
    t.appendChild(d);
    setTimeout(function(){ d.remove(); }, 4000);
  }
  function renderVideo(v){
    document.getElementById('v-title').textContent = v.title;
    document.getElementById('v-play').textContent = v.playIcon === 'pause' ? '❚❚' : '▶';
    document.getElementById('v-mute').textContent = v.muteLabel;
    document.getElementById('v-switch').textContent = v.streamLabel;
    document.getElementById('v-time-top').textContent = v.timeLabel || '';
    document.getElementById('v-time').textContent = v.timeLabel || '';
    document.getElementById('v-fill').style.width = v.progressPercent + '%';
    document.getElementById('v-progress').hidden = !v.hasDuration;
  }
  function refreshVideo(){ fetch('/video').then(function(r){ return r.json(); }).then(renderVideo); }

  document.querySelectorAll('nav button').forEach(function(b){
    b.addEventListener('click', function(){
      document.querySelectorAll('nav button').forEach(function(n){ n.classList.remove('active'); });
      document.querySelectorAll('.tab').forEach(function(n){ n.classList.remove('active'); });
      b.classList.add('active');
      document.getElementById(b.getAttribute('data-tab')).classList.add('active');
    });
  });
  document.querySelectorAll('[data-post]').forEach(function(b){
    b.addEventListener('click', function(){ post(b.getAttribute('data-post')); });
  });
  document.querySelectorAll('[data-video]').forEach(function(b){
    b.addEventListener('click', function(){ post('/video/' + b.getAttribute('data-video')).then(refreshVideo); });
  });

  var loading = document.getElementById('loading');
  post('/browser/load-start');
  document.getElementById('web').addEventListener('load', function(){
    loading.hidden = true;
    post('/browser/load-end');
  });

  var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(proto + location.host + '/events');
  ws.onmessage = function(m){
    var e = JSON.parse(m.data);
    if (e.kind === 'alert') toast(e.alert.title, e.alert.message);
    if (e.kind === 'notification') toast('🔔 ' + e.notification.title, e.notification.body);
    if (e.kind === 'status') refreshVideo();
  };
})();
</script>
`
