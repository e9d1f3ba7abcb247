package visws

import (
	"net/http"
)

// ServePage writes the live page. It opens a WebSocket on /ws, sends the session
// config built from the ?replayDelay= query parameter and draws whatever arrives.
func ServePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(livePage))
}

const livePage = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>dlgraph live</title>
    <style>
        * {
            margin: 0;
        }
        #mynetwork {
            width: 100vw;
            height: 100vh;
        }
        #status {
            position: absolute;
            top: 8px;
            left: 8px;
            font-family: monospace;
        }
    </style>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script type="text/javascript"
      src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
  </head>
  <body>
    <div id="mynetwork"></div>
    <div id="status">connecting</div>
    <script type="text/javascript">
var container = document.getElementById("mynetwork");
var statusEl = document.getElementById("status");

var data = {
  nodes: new vis.DataSet([]),
  edges: new vis.DataSet([]),
};
var network = new vis.Network(container, data, {
  physics: {
    enabled: true,
    solver: 'barnesHut',
    barnesHut: {
      gravitationalConstant: -10_000,
    }
  }
});

var params = new URLSearchParams(window.location.search);
var scheme = window.location.protocol === "https:" ? "wss://" : "ws://";
var ws = new WebSocket(scheme + window.location.host + "/ws");

ws.onopen = function () {
  ws.send(JSON.stringify({ replayDelay: params.get("replayDelay") || "0s" }));
  statusEl.textContent = "streaming";
};

ws.onmessage = function (event) {
  const msg = JSON.parse(event.data);
  switch (msg.type) {
    case "node":
      data.nodes.add(msg.data);
      break;
    case "edge":
      data.edges.add(msg.data);
      break;
    case "options":
      network.setOptions(msg.data);
      break;
    case "done":
      statusEl.textContent = msg.data.name + ": " + msg.data.nodes + " nodes, " + msg.data.edges + " edges";
      break;
  }
};

ws.onclose = function () {
  if (statusEl.textContent === "streaming") {
    statusEl.textContent = "disconnected";
  }
};
    </script>
  </body>
</html>
`
