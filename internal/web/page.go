package web

import "net/http"

const chatHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Health Buddy</title>
<style>
  *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; background: #0f172a; color: #e2e8f0; min-height: 100vh; display: flex; align-items: center; justify-content: center; }
  .card { max-width: 640px; width: 90%; background: #1e293b; border-radius: 12px; padding: 2rem; box-shadow: 0 25px 50px rgba(0,0,0,0.4); display: flex; flex-direction: column; height: 80vh; }
  h1 { font-size: 1.5rem; margin-bottom: 0.25rem; color: #f8fafc; }
  .subtitle { color: #94a3b8; margin-bottom: 1rem; font-size: 0.9rem; }
  #log { flex: 1; overflow-y: auto; border: 1px solid #334155; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; background: #0f172a; }
  .msg { margin-bottom: 0.75rem; line-height: 1.5; white-space: pre-wrap; }
  .msg.user { color: #38bdf8; }
  .msg.bot { color: #e2e8f0; }
  .msg.error { color: #f87171; }
  form { display: flex; gap: 0.5rem; }
  input { flex: 1; background: #0f172a; border: 1px solid #334155; border-radius: 8px; padding: 0.75rem; color: #e2e8f0; font-size: 1rem; }
  button { background: #38bdf8; color: #0f172a; border: none; border-radius: 8px; padding: 0.75rem 1.25rem; font-weight: 600; cursor: pointer; }
  button:disabled { opacity: 0.5; cursor: wait; }
  .disclaimer { color: #64748b; font-size: 0.75rem; margin-top: 0.75rem; }
</style>
</head>
<body>
<div class="card">
  <h1>Health Buddy</h1>
  <p class="subtitle">Ask a health question; answers are grounded in the indexed medical reference.</p>
  <div id="log"></div>
  <form id="chat">
    <input id="msg" name="msg" maxlength="1000" placeholder="What is aspirin used for?" autocomplete="off" required>
    <button id="send" type="submit">Send</button>
  </form>
  <p class="disclaimer">Not a substitute for professional medical advice. Always consult a healthcare professional for serious concerns.</p>
</div>
<script>
  const log = document.getElementById('log');
  const form = document.getElementById('chat');
  const input = document.getElementById('msg');
  const send = document.getElementById('send');

  function append(cls, text) {
    const div = document.createElement('div');
    div.className = 'msg ' + cls;
    div.textContent = text;
    log.appendChild(div);
    log.scrollTop = log.scrollHeight;
  }

  form.addEventListener('submit', async (e) => {
    e.preventDefault();
    const msg = input.value.trim();
    if (!msg) return;
    append('user', 'You: ' + msg);
    input.value = '';
    send.disabled = true;
    try {
      const resp = await fetch('/get', {
        method: 'POST',
        headers: {'Content-Type': 'application/x-www-form-urlencoded'},
        body: new URLSearchParams({msg})
      });
      const text = await resp.text();
      append(resp.ok ? 'bot' : 'error', text);
    } catch (err) {
      append('error', 'Request failed: ' + err);
    } finally {
      send.disabled = false;
      input.focus();
    }
  });
</script>
</body>
</html>`

// NewChatPageHandler returns an HTTP handler that serves the chat page at /.
func NewChatPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(chatHTML))
	}
}
