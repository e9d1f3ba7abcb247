package vis

import "text/template"

// JSON produced by encoding/json escapes <, > and &, so it is safe to drop into a
// script element as is.
var page = template.Must(template.New("vis").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>{{.Title | html}}</title>
    <style>
        * {
            margin: 0;
        }
        #mynetwork {
            width: 100vw;
            height: 100vh;
        }
    </style>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script type="text/javascript"
      src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
  </head>
  <body>
    <div id="mynetwork"></div>
    <script type="text/javascript">
let nodes = {{.NodesJson}};
let edges = {{.EdgesJson}};
let replayDelayMs = {{.ReplayDelayMs}};

var container = document.getElementById("mynetwork");

var options = Object.assign({
  physics: {
    enabled: true,
    solver: 'barnesHut',
    barnesHut: {
      gravitationalConstant: -10_000,
    }
  }
}, {{.OptionsJson}});

var data = {
  nodes: new vis.DataSet(replayDelayMs > 0 ? [] : nodes),
  edges: new vis.DataSet(replayDelayMs > 0 ? [] : edges),
};
var network = new vis.Network(container, data, options);

// Replay mode adds every node first, then every edge, one at a time.
let index = 0;

function addItem() {
    if (index < nodes.length) {
        data.nodes.add(nodes[index]);
    } else if (index < nodes.length + edges.length) {
        data.edges.add(edges[index - nodes.length]);
    } else {
        return;
    }
    index++;
    setTimeout(addItem, replayDelayMs);
}

if (replayDelayMs > 0) {
    addItem();
}
    </script>
  </body>
</html>
`))
